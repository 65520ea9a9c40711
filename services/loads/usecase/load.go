package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/naqla-app/naqla/internal/pkg/constants"
	"github.com/naqla-app/naqla/internal/pkg/errs"
	"github.com/naqla-app/naqla/internal/pkg/logger"
	"github.com/naqla-app/naqla/internal/pkg/models"
	"github.com/naqla-app/naqla/internal/utils"
)

// PostLoad validates a load draft and places it on the open board
func (u *LoadUC) PostLoad(ctx context.Context, ownerID uuid.UUID, draft *models.LoadDraft) (*models.Load, error) {
	if draft.Origin == "" {
		return nil, errs.Validationf("origin is required")
	}
	if draft.Destination == "" {
		return nil, errs.Validationf("destination is required")
	}
	if draft.Weight < 0 {
		return nil, errs.Validationf("weight must not be negative")
	}
	if draft.Price < 0 {
		return nil, errs.Validationf("price must not be negative")
	}

	owner, err := u.loadRepo.GetProfile(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !owner.IsShipper() {
		return nil, errs.Validationf("profile %s is not a shipper", ownerID)
	}

	now := models.Now()
	load := &models.Load{
		ID:                uuid.New(),
		OwnerID:           ownerID,
		Origin:            draft.Origin,
		Destination:       draft.Destination,
		OriginLat:         draft.OriginLat,
		OriginLng:         draft.OriginLng,
		DestLat:           draft.DestLat,
		DestLng:           draft.DestLng,
		Weight:            draft.Weight,
		Price:             draft.Price,
		TruckTypeRequired: draft.TruckTypeRequired,
		BodyType:          draft.BodyType,
		Description:       draft.Description,
		ReceiverName:      draft.Receiver.Name,
		ReceiverPhone:     draft.Receiver.Phone,
		ReceiverAddress:   draft.Receiver.Address,
		Products:          draft.Products,
		Status:            models.LoadStatusAvailable,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if draft.OriginLat != nil && draft.OriginLng != nil {
		cell := utils.EncodePoint(utils.GeoPoint{
			Latitude:  *draft.OriginLat,
			Longitude: *draft.OriginLng,
		})
		load.OriginGeohash = &cell

		// Route enrichment is best effort: a routing outage must not block
		// posting, the distance fields just stay empty.
		if draft.DestLat != nil && draft.DestLng != nil {
			estimate, err := u.loadGW.EstimateRoute(ctx,
				*draft.OriginLat, *draft.OriginLng, *draft.DestLat, *draft.DestLng)
			if err != nil {
				logger.Warn("Route estimation failed",
					logger.String("load_id", load.ID.String()),
					logger.ErrorField(err))
			} else {
				load.DistanceKm = &estimate.DistanceKm
				load.Duration = &estimate.Duration
			}
		}
	}

	if err := u.loadRepo.CreateLoad(ctx, load); err != nil {
		return nil, err
	}

	u.publishEvent(constants.TopicLoadPosted, load.ID, load.OwnerID, nil, load.Status)

	logger.Info("Load posted",
		logger.String("load_id", load.ID.String()),
		logger.String("owner_id", ownerID.String()),
		logger.String("origin", load.Origin),
		logger.String("destination", load.Destination))

	return load, nil
}

// GetLoads lists loads on the open board
func (u *LoadUC) GetLoads(ctx context.Context) ([]*models.LoadWithOwner, error) {
	return u.loadRepo.GetLoads(ctx)
}

// GetLoadByID retrieves a single load with its owner details
func (u *LoadUC) GetLoadByID(ctx context.Context, id uuid.UUID) (*models.LoadWithOwner, error) {
	return u.loadRepo.GetLoadByID(ctx, id)
}

// GetNearbyLoads lists available loads originating near the given point,
// searching the point's geohash cell and its eight neighbors
func (u *LoadUC) GetNearbyLoads(ctx context.Context, lat, lng float64) ([]*models.LoadWithOwner, error) {
	cells := utils.SearchCells(utils.GeoPoint{Latitude: lat, Longitude: lng})
	return u.loadRepo.GetNearbyLoads(ctx, cells)
}

// AcceptLoad assigns an available load to a driver. Acceptance is atomic:
// when two drivers race for the same load, one gets it and the other gets a
// conflict error.
func (u *LoadUC) AcceptLoad(ctx context.Context, loadID, driverID uuid.UUID) (*models.LoadWithOwner, error) {
	driver, err := u.loadRepo.GetProfile(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if !driver.IsDriver() {
		return nil, errs.Validationf("profile %s is not a driver", driverID)
	}

	if err := u.loadRepo.AcceptLoad(ctx, loadID, driverID); err != nil {
		return nil, err
	}

	load, err := u.loadRepo.GetLoadByID(ctx, loadID)
	if err != nil {
		return nil, err
	}

	u.publishEvent(constants.TopicLoadAccepted, loadID, load.OwnerID, &driverID, load.Status)

	logger.Info("Load accepted",
		logger.String("load_id", loadID.String()),
		logger.String("driver_id", driverID.String()))

	return load, nil
}

// CompleteLoad marks an in-progress load as delivered by its assigned driver
func (u *LoadUC) CompleteLoad(ctx context.Context, loadID, driverID uuid.UUID) (*models.LoadWithOwner, error) {
	if err := u.loadRepo.CompleteLoad(ctx, loadID, driverID); err != nil {
		return nil, err
	}

	load, err := u.loadRepo.GetLoadByID(ctx, loadID)
	if err != nil {
		return nil, err
	}

	u.publishEvent(constants.TopicLoadCompleted, loadID, load.OwnerID, &driverID, load.Status)

	logger.Info("Load completed",
		logger.String("load_id", loadID.String()),
		logger.String("driver_id", driverID.String()))

	return load, nil
}

// CancelLoad releases a load back to the open board. Only the owning shipper
// or the currently assigned driver may cancel, and completed loads stay
// completed. Cancelling an already-available load is a no-op success.
func (u *LoadUC) CancelLoad(ctx context.Context, loadID, actorID uuid.UUID) error {
	load, err := u.loadRepo.GetLoadByID(ctx, loadID)
	if err != nil {
		return err
	}

	isOwner := load.OwnerID == actorID
	isAssignedDriver := load.DriverID != nil && *load.DriverID == actorID
	if !isOwner && !isAssignedDriver {
		return errs.Authf("only the load owner or assigned driver may cancel")
	}

	if load.Status == models.LoadStatusCompleted {
		return errs.Conflictf("completed loads cannot be cancelled")
	}

	if err := u.loadRepo.ReleaseLoad(ctx, loadID); err != nil {
		return err
	}

	u.publishEvent(constants.TopicLoadReleased, loadID, load.OwnerID, load.DriverID, models.LoadStatusAvailable)

	logger.Info("Load released",
		logger.String("load_id", loadID.String()),
		logger.String("actor_id", actorID.String()))

	return nil
}

// GetDriverHistory lists all loads ever assigned to a driver
func (u *LoadUC) GetDriverHistory(ctx context.Context, driverID uuid.UUID) ([]*models.LoadWithOwner, error) {
	return u.loadRepo.GetDriverHistory(ctx, driverID)
}

// publishEvent emits a lifecycle event; publish failures are logged, never
// surfaced to the caller.
func (u *LoadUC) publishEvent(topic string, loadID, ownerID uuid.UUID, driverID *uuid.UUID, status models.LoadStatus) {
	event := &models.LoadEvent{
		LoadID:   loadID,
		OwnerID:  ownerID,
		DriverID: driverID,
		Status:   status,
		At:       models.Now(),
	}
	if err := u.loadGW.PublishLoadEvent(topic, event); err != nil {
		logger.Warn("Failed to publish load event",
			logger.String("topic", topic),
			logger.String("load_id", loadID.String()),
			logger.ErrorField(err))
	}
}
