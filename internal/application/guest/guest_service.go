package guest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/guest"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
)

// GuestService handles guest profile operations
type GuestService struct {
	guestRepo guest.GuestRepository
	logger    *zap.Logger
}

// NewGuestService creates a new GuestService
func NewGuestService(guestRepo guest.GuestRepository, logger *zap.Logger) *GuestService {
	return &GuestService{guestRepo: guestRepo, logger: logger}
}

// CreateGuestRequest carries the inputs for guest creation
type CreateGuestRequest struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	GuestType       guest.GuestType
	GuestSource     string
	Age             *int
	DateOfBirth     *time.Time
	Gender          string
	Nationality     string
	IDType          guest.IDType
	IDNumber        string
	Address         string
	City            string
	Country         string
	PostalCode      string
	SpecialRequests string
	ActorID         uuid.UUID
}

// GuestResponse represents a guest in API responses
type GuestResponse struct {
	ID              uuid.UUID  `json:"id"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	FullName        string     `json:"full_name"`
	Email           string     `json:"email,omitempty"`
	Phone           string     `json:"phone"`
	GuestType       string     `json:"guest_type"`
	GuestSource     string     `json:"guest_source,omitempty"`
	Age             *int       `json:"age,omitempty"`
	DateOfBirth     *time.Time `json:"date_of_birth,omitempty"`
	Gender          string     `json:"gender,omitempty"`
	Nationality     string     `json:"nationality,omitempty"`
	IDType          string     `json:"id_type,omitempty"`
	IDNumber        string     `json:"id_number,omitempty"`
	Address         string     `json:"address,omitempty"`
	City            string     `json:"city,omitempty"`
	Country         string     `json:"country,omitempty"`
	PostalCode      string     `json:"postal_code,omitempty"`
	VIPStatus       string     `json:"vip_status"`
	SpecialRequests string     `json:"special_requests,omitempty"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ToGuestResponse converts a domain guest to a response DTO
func ToGuestResponse(g *guest.Guest) *GuestResponse {
	resp := &GuestResponse{
		ID:              g.ID,
		FirstName:       g.FirstName,
		LastName:        g.LastName,
		FullName:        g.FullName(),
		Phone:           g.Phone,
		GuestType:       g.GuestType.String(),
		GuestSource:     g.GuestSource,
		Age:             g.CalculatedAge(time.Now()),
		DateOfBirth:     g.DateOfBirth,
		Gender:          g.Gender,
		Nationality:     g.Nationality,
		IDType:          string(g.IDType),
		IDNumber:        g.IDNumber,
		Address:         g.Address,
		City:            g.City,
		Country:         g.Country,
		PostalCode:      g.PostalCode,
		VIPStatus:       g.VIPStatus.String(),
		SpecialRequests: g.SpecialRequests,
		IsActive:        g.IsActive,
		CreatedAt:       g.CreatedAt,
		UpdatedAt:       g.UpdatedAt,
	}
	if g.Email != nil {
		resp.Email = *g.Email
	}
	return resp
}

// CreateGuest registers a new guest profile. Email is optional but must be
// unique when provided.
func (s *GuestService) CreateGuest(ctx context.Context, req CreateGuestRequest) (*GuestResponse, error) {
	if req.Email != "" {
		exists, err := s.guestRepo.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Guest with this email already exists")
		}
	}

	g, err := guest.NewGuest(req.FirstName, req.LastName, req.Phone, req.GuestType)
	if err != nil {
		return nil, err
	}
	g.SetEmail(req.Email)
	g.GuestSource = req.GuestSource
	g.Age = req.Age
	g.DateOfBirth = req.DateOfBirth
	g.Gender = req.Gender
	g.Nationality = req.Nationality
	g.IDType = req.IDType
	g.IDNumber = req.IDNumber
	g.Address = req.Address
	g.City = req.City
	g.Country = req.Country
	g.PostalCode = req.PostalCode
	g.SpecialRequests = req.SpecialRequests
	g.CreatedBy = &req.ActorID

	if err := s.guestRepo.Save(ctx, g); err != nil {
		return nil, err
	}

	s.logger.Info("guest created",
		zap.String("guest_id", g.ID.String()),
		zap.String("guest_type", g.GuestType.String()),
	)

	return ToGuestResponse(g), nil
}

// GetGuest returns a guest by ID
func (s *GuestService) GetGuest(ctx context.Context, id uuid.UUID) (*GuestResponse, error) {
	g, err := s.guestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, shared.ErrNotFound
	}
	return ToGuestResponse(g), nil
}

// ListGuestsFilter defines filtering options for guest listing
type ListGuestsFilter struct {
	GuestType string
	VIPStatus string
	IsActive  *bool
	Search    string
	Page      int
	PageSize  int
}

// ListGuests returns a page of guests, newest first
func (s *GuestService) ListGuests(ctx context.Context, filter ListGuestsFilter) (*shared.Paginated[GuestResponse], error) {
	f := guest.GuestFilter{Filter: shared.DefaultFilter()}
	f.Search = filter.Search
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	if filter.GuestType != "" {
		t := guest.GuestType(filter.GuestType)
		f.GuestType = &t
	}
	if filter.VIPStatus != "" {
		v := guest.VIPStatus(filter.VIPStatus)
		f.VIPStatus = &v
	}
	f.IsActive = filter.IsActive

	guests, err := s.guestRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.guestRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	items := make([]GuestResponse, 0, len(guests))
	for i := range guests {
		items = append(items, *ToGuestResponse(&guests[i]))
	}

	page := shared.NewPaginated(items, total, f.Page, f.PageSize)
	return &page, nil
}

// UpdateGuestRequest carries the editable guest fields
type UpdateGuestRequest struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	GuestType       guest.GuestType
	Age             *int
	DateOfBirth     *time.Time
	Gender          string
	Nationality     string
	IDType          guest.IDType
	IDNumber        string
	Address         string
	City            string
	Country         string
	PostalCode      string
	VIPStatus       guest.VIPStatus
	SpecialRequests string
}

// UpdateGuest replaces the editable fields of a guest profile
func (s *GuestService) UpdateGuest(ctx context.Context, id uuid.UUID, req UpdateGuestRequest) (*GuestResponse, error) {
	g, err := s.guestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, shared.ErrNotFound
	}

	if req.Email != "" && (g.Email == nil || *g.Email != req.Email) {
		exists, err := s.guestRepo.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Guest with this email already exists")
		}
	}

	updated, err := guest.NewGuest(req.FirstName, req.LastName, req.Phone, req.GuestType)
	if err != nil {
		return nil, err
	}
	g.FirstName = updated.FirstName
	g.LastName = updated.LastName
	g.Phone = updated.Phone
	g.GuestType = updated.GuestType
	g.SetEmail(req.Email)
	g.Age = req.Age
	g.DateOfBirth = req.DateOfBirth
	g.Gender = req.Gender
	g.Nationality = req.Nationality
	g.IDType = req.IDType
	g.IDNumber = req.IDNumber
	g.Address = req.Address
	g.City = req.City
	g.Country = req.Country
	g.PostalCode = req.PostalCode
	g.SpecialRequests = req.SpecialRequests
	if req.VIPStatus != "" {
		if err := g.PromoteVIP(req.VIPStatus); err != nil {
			return nil, err
		}
	}
	g.UpdatedAt = time.Now()
	g.IncrementVersion()

	if err := s.guestRepo.Save(ctx, g); err != nil {
		return nil, err
	}
	return ToGuestResponse(g), nil
}

// DeleteGuest removes a guest. Deletion is blocked while the guest has
// confirmed or active bookings.
func (s *GuestService) DeleteGuest(ctx context.Context, id uuid.UUID) error {
	g, err := s.guestRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if g == nil {
		return shared.ErrNotFound
	}

	active, err := s.guestRepo.CountActiveBookings(ctx, id)
	if err != nil {
		return err
	}
	if active > 0 {
		return shared.NewDomainError("GUEST_IN_USE", "Guest has active bookings and cannot be deleted")
	}

	if err := s.guestRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("guest deleted", zap.String("guest_id", id.String()))
	return nil
}
