package middleware

import (
	"context"
	"net/http"
	"slices"
	"time"

	"vypar/db"
	"vypar/globals"
	"vypar/models"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// resolveCaller turns validated claims into the caller identity handlers
// receive. The seller profile is looked up once here; downstream code never
// re-checks role flags.
func resolveCaller(ctx context.Context, claims *Claims) models.Caller {
	caller := models.Caller{
		UserID:  claims.UserID,
		Name:    claims.Username,
		IsAdmin: slices.Contains(claims.Role, "admin"),
	}

	var seller models.Seller
	lctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	err := db.SellerCollection.FindOne(lctx, bson.M{"userid": claims.UserID, "isVerified": true}).Decode(&seller)
	if err == nil {
		caller.SellerID = seller.SellerID
	}
	return caller
}

func withCaller(next httprouter.Handle, check func(models.Caller) bool, denied string) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		tokenString := r.Header.Get("Authorization")
		claims, err := ValidateJWT(tokenString)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		caller := resolveCaller(r.Context(), claims)
		if !check(caller) {
			http.Error(w, denied, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), globals.UserIDKey, caller.UserID)
		ctx = context.WithValue(ctx, globals.CallerKey, caller)
		next(w, r.WithContext(ctx), ps)
	}
}

// Authenticate admits any caller with a valid token; the Require* wrappers
// below add a role gate on top of the same resolution.
func Authenticate(next httprouter.Handle) httprouter.Handle {
	return withCaller(next, func(models.Caller) bool { return true }, "")
}

func RequireSeller(next httprouter.Handle) httprouter.Handle {
	return withCaller(next, func(c models.Caller) bool { return c.IsSeller() }, "Seller account required")
}

func RequireAdmin(next httprouter.Handle) httprouter.Handle {
	return withCaller(next, func(c models.Caller) bool { return c.IsAdmin }, "Admin account required")
}

func RequireSellerOrAdmin(next httprouter.Handle) httprouter.Handle {
	return withCaller(next, func(c models.Caller) bool { return c.IsSeller() || c.IsAdmin }, "Seller or admin account required")
}

// CallerFromRequest returns the resolved caller, or the zero value when the
// route was not wrapped by a Require* middleware.
func CallerFromRequest(r *http.Request) models.Caller {
	caller, _ := r.Context().Value(globals.CallerKey).(models.Caller)
	return caller
}
