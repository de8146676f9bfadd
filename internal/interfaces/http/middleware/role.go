package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/identity"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/interfaces/http/dto"
)

// RequireAdmin allows only administrators through
func RequireAdmin() gin.HandlerFunc {
	return requireRole(func(role identity.Role) bool {
		return role == identity.RoleAdmin
	})
}

// RequireBookingAccess allows roles that may work with bookings, guests
// and rooms
func RequireBookingAccess() gin.HandlerFunc {
	return requireRole(identity.Role.CanManageBookings)
}

// RequireRestaurantAccess allows roles that may work with the restaurant
// module
func RequireRestaurantAccess() gin.HandlerFunc {
	return requireRole(identity.Role.CanManageRestaurant)
}

func requireRole(allowed func(identity.Role) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := GetJWTRole(c)
		if !role.IsValid() || !allowed(role) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponseWithRequestID(dto.ErrCodeForbidden,
					"You do not have permission to perform this action",
					GetRequestID(c)))
			return
		}
		c.Next()
	}
}
