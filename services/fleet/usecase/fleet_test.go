package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naqla-app/naqla/internal/pkg/errs"
	"github.com/naqla-app/naqla/internal/pkg/models"
	"github.com/naqla-app/naqla/services/fleet/mocks"
)

func newFleetUC(t *testing.T) (*FleetUC, *mocks.MockFleetRepo, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockFleetRepo(ctrl)
	uc := NewFleetUC(mockRepo, &models.Config{})
	return uc, mockRepo, ctrl
}

func TestRegisterVehicle_Success(t *testing.T) {
	uc, mockRepo, ctrl := newFleetUC(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	mockRepo.EXPECT().
		GetProfile(gomock.Any(), ownerID).
		Return(&models.Profile{ID: ownerID, Role: models.RoleDriver}, nil)

	mockRepo.EXPECT().
		UpsertDriverDetails(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, details *models.DriverDetails) error {
			assert.Equal(t, ownerID, details.OwnerID)
			assert.Equal(t, "flatbed", details.TruckType)
			assert.Equal(t, "ABC 1234", details.PlateNumber)
			return nil
		})

	details, err := uc.RegisterVehicle(context.Background(), ownerID, &models.DriverDetailsInput{
		TruckType:   "flatbed",
		BodyType:    "open",
		PlateNumber: "ABC 1234",
	})

	assert.NoError(t, err)
	require.NotNil(t, details)
	assert.Equal(t, ownerID, details.OwnerID)
}

func TestRegisterVehicle_MissingPlateNumber(t *testing.T) {
	uc, _, ctrl := newFleetUC(t)
	defer ctrl.Finish()

	details, err := uc.RegisterVehicle(context.Background(), uuid.New(), &models.DriverDetailsInput{
		TruckType: "flatbed",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValidation))
	assert.Nil(t, details)
}

func TestRegisterVehicle_NotADriver(t *testing.T) {
	uc, mockRepo, ctrl := newFleetUC(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	mockRepo.EXPECT().
		GetProfile(gomock.Any(), ownerID).
		Return(&models.Profile{ID: ownerID, Role: models.RoleShipper}, nil)

	details, err := uc.RegisterVehicle(context.Background(), ownerID, &models.DriverDetailsInput{
		TruckType:   "flatbed",
		PlateNumber: "ABC 1234",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValidation))
	assert.Nil(t, details)
}

func TestRegisterVehicle_ProfileMissing(t *testing.T) {
	uc, mockRepo, ctrl := newFleetUC(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	mockRepo.EXPECT().
		GetProfile(gomock.Any(), ownerID).
		Return(nil, errs.NotFoundf("profile not found"))

	details, err := uc.RegisterVehicle(context.Background(), ownerID, &models.DriverDetailsInput{
		TruckType:   "flatbed",
		PlateNumber: "ABC 1234",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrNotFound))
	assert.Nil(t, details)
}

func TestGetDriverDetails_PendingSetup(t *testing.T) {
	uc, mockRepo, ctrl := newFleetUC(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	mockRepo.EXPECT().
		GetDriverDetails(gomock.Any(), ownerID).
		Return(nil, nil)

	details, err := uc.GetDriverDetails(context.Background(), ownerID)

	assert.NoError(t, err)
	assert.Nil(t, details)
}

func TestAddTruck_Success(t *testing.T) {
	uc, mockRepo, ctrl := newFleetUC(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	mockRepo.EXPECT().
		GetProfile(gomock.Any(), ownerID).
		Return(&models.Profile{ID: ownerID, Role: models.RoleDriver}, nil)

	mockRepo.EXPECT().
		AddTruck(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, truck *models.Truck) error {
			assert.Equal(t, ownerID, truck.OwnerID)
			assert.Equal(t, "XYZ 9876", truck.PlateNumber)
			return nil
		})

	truck, err := uc.AddTruck(context.Background(), ownerID, &models.TruckInput{
		PlateNumber: "XYZ 9876",
		Brand:       "Volvo",
		ModelYear:   2021,
		TruckType:   "refrigerated",
	})

	assert.NoError(t, err)
	require.NotNil(t, truck)
	assert.Equal(t, "Volvo", truck.Brand)
}

func TestAddSubDriver_MissingPhone(t *testing.T) {
	uc, _, ctrl := newFleetUC(t)
	defer ctrl.Finish()

	subDriver, err := uc.AddSubDriver(context.Background(), uuid.New(), &models.SubDriverInput{
		DriverName: "Company Driver",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValidation))
	assert.Nil(t, subDriver)
}
