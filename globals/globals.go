package globals

import (
	"context"
	"os"
)

var JwtSecret = jwtSecretFromEnv()

func jwtSecretFromEnv() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("vypar_dev_secret")
}

// Context keys
type ContextKey string

const UserIDKey ContextKey = "userId"
const CallerKey ContextKey = "caller"

var Ctx = context.Background()
