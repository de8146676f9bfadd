package guest

import (
	"regexp"
	"strings"
	"time"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
)

// GuestType distinguishes full booking guests from facility-only visitors
type GuestType string

const (
	GuestTypeBooking  GuestType = "booking"
	GuestTypeGym      GuestType = "gym"
	GuestTypeSwimming GuestType = "swimming"
)

// IsValid checks if the type is a valid GuestType
func (t GuestType) IsValid() bool {
	switch t {
	case GuestTypeBooking, GuestTypeGym, GuestTypeSwimming:
		return true
	}
	return false
}

// String returns the string representation of GuestType
func (t GuestType) String() string {
	return string(t)
}

// VIPStatus represents the guest's loyalty tier
type VIPStatus string

const (
	VIPStatusRegular  VIPStatus = "regular"
	VIPStatusSilver   VIPStatus = "silver"
	VIPStatusGold     VIPStatus = "gold"
	VIPStatusPlatinum VIPStatus = "platinum"
)

// IsValid checks if the status is a valid VIPStatus
func (s VIPStatus) IsValid() bool {
	switch s {
	case VIPStatusRegular, VIPStatusSilver, VIPStatusGold, VIPStatusPlatinum:
		return true
	}
	return false
}

// String returns the string representation of VIPStatus
func (s VIPStatus) String() string {
	return string(s)
}

// IDType represents the kind of identity document on file
type IDType string

const (
	IDTypePassport       IDType = "passport"
	IDTypeNationalID     IDType = "national_id"
	IDTypeDrivingLicense IDType = "driving_license"
	IDTypeOther          IDType = "other"
)

// IsValid checks if the type is a valid IDType
func (t IDType) IsValid() bool {
	switch t {
	case IDTypePassport, IDTypeNationalID, IDTypeDrivingLicense, IDTypeOther:
		return true
	}
	return false
}

var phonePattern = regexp.MustCompile(`^\+?1?\d{9,15}$`)

// Guest is the aggregate root for a hotel guest profile. Email is optional
// but unique when present; gym and swimming guests carry only the simplified
// fields (name, phone, age).
type Guest struct {
	shared.BaseAggregateRoot
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       *string   `json:"email,omitempty"`
	Phone       string    `json:"phone"`
	GuestType   GuestType `json:"guest_type"`
	GuestSource string    `json:"guest_source"`
	Age         *int      `json:"age,omitempty"`

	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Gender      string     `json:"gender"`
	Nationality string     `json:"nationality"`
	IDType      IDType     `json:"id_type"`
	IDNumber    string     `json:"id_number"`

	Address    string `json:"address"`
	City       string `json:"city"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`

	VIPStatus       VIPStatus `json:"vip_status"`
	SpecialRequests string    `json:"special_requests"`

	IsActive bool `json:"is_active"`
}

// NewGuest creates an active guest profile
func NewGuest(firstName, lastName, phone string, guestType GuestType) (*Guest, error) {
	if strings.TrimSpace(firstName) == "" {
		return nil, shared.NewDomainError("INVALID_GUEST_NAME", "First name cannot be empty")
	}
	if !phonePattern.MatchString(phone) {
		return nil, shared.NewDomainError("INVALID_PHONE", "Phone number must be valid")
	}
	if !guestType.IsValid() {
		guestType = GuestTypeBooking
	}

	return &Guest{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		FirstName:         firstName,
		LastName:          lastName,
		Phone:             phone,
		GuestType:         guestType,
		VIPStatus:         VIPStatusRegular,
		IsActive:          true,
	}, nil
}

// FullName returns the guest's display name
func (g *Guest) FullName() string {
	return strings.TrimSpace(g.FirstName + " " + g.LastName)
}

// SetEmail sets or clears the optional unique email
func (g *Guest) SetEmail(email string) {
	if email == "" {
		g.Email = nil
		return
	}
	g.Email = &email
}

// CalculatedAge returns the stored age if set, otherwise the age calculated
// from the date of birth, otherwise nil.
func (g *Guest) CalculatedAge(now time.Time) *int {
	if g.Age != nil {
		return g.Age
	}
	if g.DateOfBirth == nil {
		return nil
	}
	years := now.Year() - g.DateOfBirth.Year()
	anniversary := g.DateOfBirth.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return &years
}

// PromoteVIP moves the guest to a new loyalty tier
func (g *Guest) PromoteVIP(status VIPStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_VIP_STATUS", "Invalid VIP status selected")
	}
	g.VIPStatus = status
	g.UpdatedAt = time.Now()
	g.IncrementVersion()
	return nil
}

// Deactivate archives the guest profile
func (g *Guest) Deactivate() {
	g.IsActive = false
	g.UpdatedAt = time.Now()
	g.IncrementVersion()
}
