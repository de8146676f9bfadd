package room

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/room"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
)

// RoomService handles room and room type operations
type RoomService struct {
	roomRepo     room.RoomRepository
	roomTypeRepo room.RoomTypeRepository
	logger       *zap.Logger
}

// NewRoomService creates a new RoomService
func NewRoomService(roomRepo room.RoomRepository, roomTypeRepo room.RoomTypeRepository, logger *zap.Logger) *RoomService {
	return &RoomService{roomRepo: roomRepo, roomTypeRepo: roomTypeRepo, logger: logger}
}

// RoomTypeResponse represents a room type in API responses
type RoomTypeResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	BasePrice   decimal.Decimal `json:"base_price"`
	Capacity    int             `json:"capacity"`
	Amenities   []string        `json:"amenities,omitempty"`
	IsActive    bool            `json:"is_active"`
}

// ToRoomTypeResponse converts a domain room type to a response DTO
func ToRoomTypeResponse(rt *room.RoomType) *RoomTypeResponse {
	return &RoomTypeResponse{
		ID:          rt.ID,
		Name:        rt.Name,
		Description: rt.Description,
		BasePrice:   rt.BasePrice,
		Capacity:    rt.Capacity,
		Amenities:   rt.AmenitiesList(),
		IsActive:    rt.IsActive,
	}
}

// RoomResponse represents a room in API responses
type RoomResponse struct {
	ID             uuid.UUID         `json:"id"`
	RoomNumber     string            `json:"room_number"`
	RoomTypeID     uuid.UUID         `json:"room_type_id"`
	RoomType       *RoomTypeResponse `json:"room_type,omitempty"`
	Floor          int               `json:"floor"`
	Status         string            `json:"status"`
	EffectivePrice decimal.Decimal   `json:"effective_price"`
	Notes          string            `json:"notes,omitempty"`
	IsActive       bool              `json:"is_active"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// ToRoomResponse converts a domain room to a response DTO
func ToRoomResponse(r *room.Room) *RoomResponse {
	resp := &RoomResponse{
		ID:             r.ID,
		RoomNumber:     r.RoomNumber,
		RoomTypeID:     r.RoomTypeID,
		Floor:          r.Floor,
		Status:         r.Status.String(),
		EffectivePrice: r.EffectivePrice(),
		Notes:          r.Notes,
		IsActive:       r.IsActive,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
	if r.RoomType != nil {
		resp.RoomType = ToRoomTypeResponse(r.RoomType)
	}
	return resp
}

// CreateRoomTypeRequest carries the inputs for room type creation
type CreateRoomTypeRequest struct {
	Name        string
	Description string
	BasePrice   decimal.Decimal
	Capacity    int
	Amenities   string
}

// CreateRoomType creates a new room type
func (s *RoomService) CreateRoomType(ctx context.Context, req CreateRoomTypeRequest) (*RoomTypeResponse, error) {
	rt, err := room.NewRoomType(req.Name, req.BasePrice, req.Capacity)
	if err != nil {
		return nil, err
	}
	rt.Description = req.Description
	rt.Amenities = req.Amenities

	if err := s.roomTypeRepo.Save(ctx, rt); err != nil {
		return nil, err
	}
	s.logger.Info("room type created", zap.String("name", rt.Name))
	return ToRoomTypeResponse(rt), nil
}

// ListRoomTypes returns all room types
func (s *RoomService) ListRoomTypes(ctx context.Context) ([]RoomTypeResponse, error) {
	types, err := s.roomTypeRepo.FindAll(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	out := make([]RoomTypeResponse, 0, len(types))
	for i := range types {
		out = append(out, *ToRoomTypeResponse(&types[i]))
	}
	return out, nil
}

// CreateRoomRequest carries the inputs for room creation
type CreateRoomRequest struct {
	RoomNumber   string
	RoomTypeID   uuid.UUID
	Floor        int
	CurrentPrice *decimal.Decimal
	Notes        string
}

// CreateRoom creates a new room under an existing room type
func (s *RoomService) CreateRoom(ctx context.Context, req CreateRoomRequest) (*RoomResponse, error) {
	existing, err := s.roomRepo.FindByNumber(ctx, req.RoomNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Room with this number already exists")
	}

	rt, err := s.roomTypeRepo.FindByID(ctx, req.RoomTypeID)
	if err != nil {
		return nil, err
	}
	if rt == nil {
		return nil, shared.ErrNotFound
	}

	r, err := room.NewRoom(req.RoomNumber, rt.ID, req.Floor)
	if err != nil {
		return nil, err
	}
	r.RoomType = rt
	r.CurrentPrice = req.CurrentPrice
	r.Notes = req.Notes

	if err := s.roomRepo.Save(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info("room created",
		zap.String("room_number", r.RoomNumber),
		zap.String("room_type", rt.Name),
	)
	return ToRoomResponse(r), nil
}

// GetRoom returns a room by ID
func (s *RoomService) GetRoom(ctx context.Context, id uuid.UUID) (*RoomResponse, error) {
	r, err := s.roomRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, shared.ErrNotFound
	}
	return ToRoomResponse(r), nil
}

// ListRoomsFilter defines filtering options for room listing
type ListRoomsFilter struct {
	RoomTypeID *uuid.UUID
	Status     string
	Floor      *int
	IsActive   *bool
	Page       int
	PageSize   int
}

// ListRooms returns a page of rooms ordered by room number
func (s *RoomService) ListRooms(ctx context.Context, filter ListRoomsFilter) (*shared.Paginated[RoomResponse], error) {
	f := room.RoomFilter{Filter: shared.DefaultFilter()}
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	f.RoomTypeID = filter.RoomTypeID
	f.Floor = filter.Floor
	f.IsActive = filter.IsActive
	if filter.Status != "" {
		st := room.RoomStatus(filter.Status)
		f.Status = &st
	}

	rooms, err := s.roomRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.roomRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	items := make([]RoomResponse, 0, len(rooms))
	for i := range rooms {
		items = append(items, *ToRoomResponse(&rooms[i]))
	}
	page := shared.NewPaginated(items, total, f.Page, f.PageSize)
	return &page, nil
}

// UpdateRoomRequest carries the editable room fields
type UpdateRoomRequest struct {
	RoomTypeID   uuid.UUID
	Floor        int
	Status       room.RoomStatus
	CurrentPrice *decimal.Decimal
	Notes        string
	IsActive     *bool
}

// UpdateRoom replaces the editable fields of a room
func (s *RoomService) UpdateRoom(ctx context.Context, id uuid.UUID, req UpdateRoomRequest) (*RoomResponse, error) {
	r, err := s.roomRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, shared.ErrNotFound
	}

	if req.RoomTypeID != uuid.Nil && req.RoomTypeID != r.RoomTypeID {
		rt, err := s.roomTypeRepo.FindByID(ctx, req.RoomTypeID)
		if err != nil {
			return nil, err
		}
		if rt == nil {
			return nil, shared.ErrNotFound
		}
		r.RoomTypeID = rt.ID
		r.RoomType = rt
	}
	if req.Floor != 0 {
		if req.Floor < 1 || req.Floor > 10 {
			return nil, shared.NewDomainError("INVALID_FLOOR", "Floor must be between 1 and 10")
		}
		r.Floor = req.Floor
	}
	if req.Status != "" {
		if err := r.UpdateStatus(req.Status); err != nil {
			return nil, err
		}
	}
	r.CurrentPrice = req.CurrentPrice
	r.Notes = req.Notes
	if req.IsActive != nil {
		r.IsActive = *req.IsActive
	}
	r.UpdatedAt = time.Now()

	if err := s.roomRepo.Save(ctx, r); err != nil {
		return nil, err
	}
	return ToRoomResponse(r), nil
}

// UpdateRoomStatus moves a room to a new operational status
func (s *RoomService) UpdateRoomStatus(ctx context.Context, id uuid.UUID, status room.RoomStatus) (*RoomResponse, error) {
	r, err := s.roomRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, shared.ErrNotFound
	}

	if err := r.UpdateStatus(status); err != nil {
		return nil, err
	}
	if err := s.roomRepo.Save(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info("room status updated",
		zap.String("room_number", r.RoomNumber),
		zap.String("status", status.String()),
	)
	return ToRoomResponse(r), nil
}

// DeleteRoom removes a room. Occupied rooms cannot be deleted.
func (s *RoomService) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	r, err := s.roomRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if r == nil {
		return shared.ErrNotFound
	}
	if r.Status == room.RoomStatusOccupied {
		return shared.NewDomainError("ROOM_OCCUPIED", "Occupied rooms cannot be deleted")
	}

	if err := s.roomRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("room deleted", zap.String("room_number", r.RoomNumber))
	return nil
}
