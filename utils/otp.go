// utils/otp.go
package utils

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"time"

	"github.com/go-redis/redis/v8"
)

// OTPLength is the number of digits in a generated passcode
const OTPLength = 6

// GenerateOTP generates a random numeric OTP of the specified length
func GenerateOTP(length int) (string, error) {
	const digits = "0123456789"
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", err
		}
		result[i] = digits[num.Int64()]
	}
	return string(result), nil
}

// ErrTooManyAttempts is returned when an email exceeds its hourly
// verification budget.
var ErrTooManyAttempts = errors.New("too many OTP attempts")

// ValidateOTPAttempts counts verification attempts per email in Redis,
// limited to 5 per hour.
func ValidateOTPAttempts(ctx context.Context, email string, rdb *redis.Client) error {
	key := "otp_attempts:" + email
	attempts, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return err
	}

	// Set expiry if first attempt
	if attempts == 1 {
		rdb.Expire(ctx, key, 1*time.Hour)
	}

	if attempts > 5 {
		return ErrTooManyAttempts
	}

	return nil
}
