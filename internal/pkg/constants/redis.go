package constants

// Redis key formats
const (
	KeySignupOTP  = "auth:otp:%s"   // Format: auth:otp:{email}
	KeyResetToken = "auth:reset:%s" // Format: auth:reset:{email}
)
