package request

import (
	"hotel-pms/internal/domain/allocation"
	"hotel-pms/internal/domain/client"
	"hotel-pms/internal/domain/rate"
	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/domain/room"
	"hotel-pms/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ClientRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	NameKana    *string `json:"nameKana,omitempty"`
	NameKanji   *string `json:"nameKanji,omitempty"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"`
	Person      string  `json:"legalOrNaturalPerson,omitempty" binding:"omitempty,oneof=natural legal"`
	Gender      string  `json:"gender,omitempty" binding:"omitempty,oneof=male female other"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
}

func (r ClientRequest) ToAttributes() (client.Attributes, error) {
	attrs := client.Attributes{
		Name:      r.Name,
		NameKana:  r.NameKana,
		NameKanji: r.NameKanji,
		Person:    client.PersonKind(r.Person),
		Gender:    client.Gender(r.Gender),
		Email:     r.Email,
		Phone:     r.Phone,
	}
	if r.DateOfBirth != nil && *r.DateOfBirth != "" {
		dob, err := reservation.ParseDate(*r.DateOfBirth)
		if err != nil {
			return client.Attributes{}, err
		}
		attrs.DateOfBirth = &dob
	}
	return attrs, nil
}

type RoomTypeRequest struct {
	RoomTypeID int32 `json:"roomTypeId" binding:"required"`
	Rooms      int   `json:"rooms" binding:"required,min=1"`
	People     int   `json:"people" binding:"required,min=1"`
}

type CreateHoldRequest struct {
	CheckIn     string            `json:"checkIn" binding:"required"`
	CheckOut    string            `json:"checkOut" binding:"required"`
	People      int               `json:"numberOfPeople" binding:"min=0"`
	ClientID    *uuid.UUID        `json:"clientId,omitempty"`
	Client      *ClientRequest    `json:"client,omitempty"`
	Type        string            `json:"type,omitempty" binding:"omitempty,oneof=direct web employee"`
	Comment     string            `json:"comment,omitempty" binding:"max=2000"`
	Mode        string            `json:"mode" binding:"required,oneof=best-fit-single combo-by-type specific-room"`
	RoomTypeID  *int32            `json:"roomTypeId,omitempty"`
	MinCapacity int               `json:"minCapacity,omitempty" binding:"min=0"`
	Smoking     *bool             `json:"smoking,omitempty"`
	RoomTypes   []RoomTypeRequest `json:"roomTypes,omitempty" binding:"dive"`
	RoomID      *int32            `json:"roomId,omitempty"`
}

func (r CreateHoldRequest) ToCommand(hotelID int32) (commands.CreateHoldRequest, error) {
	cmd := commands.CreateHoldRequest{
		HotelID:  hotelID,
		CheckIn:  r.CheckIn,
		CheckOut: r.CheckOut,
		People:   r.People,
		ClientID: r.ClientID,
		Type:     reservation.Type(r.Type),
		Comment:  r.Comment,
		Selector: commands.RoomSelector{
			Mode: allocation.Mode(r.Mode),
			Filter: room.Filter{
				RoomTypeID:  r.RoomTypeID,
				MinCapacity: r.MinCapacity,
				Smoking:     r.Smoking,
			},
			RoomID: r.RoomID,
		},
	}
	if err := copier.Copy(&cmd.Selector.RoomTypes, &r.RoomTypes); err != nil {
		return commands.CreateHoldRequest{}, err
	}
	if r.Client != nil {
		attrs, err := r.Client.ToAttributes()
		if err != nil {
			return commands.CreateHoldRequest{}, err
		}
		cmd.Client = &attrs
	}
	return cmd, nil
}

type ChangeStatusRequest struct {
	Status  string `json:"status" binding:"required,oneof=provisory confirmed cancelled recovered"`
	FullFee bool   `json:"fullFee"`
}

type AddRoomRequest struct {
	RoomID int32 `json:"roomId" binding:"required"`
	People int   `json:"numberOfPeople" binding:"required,min=1"`
}

type MoveRoomRequest struct {
	ToRoomID int32  `json:"toRoomId" binding:"required"`
	CheckIn  string `json:"checkIn,omitempty"`
	CheckOut string `json:"checkOut,omitempty"`
	Solo     bool   `json:"solo"`
}

type AddonRequest struct {
	GlobalID  *int32  `json:"addonsGlobalId,omitempty"`
	HotelRef  *int32  `json:"addonsHotelId,omitempty"`
	Name      string  `json:"name" binding:"required"`
	Quantity  int     `json:"quantity" binding:"min=1"`
	Price     float64 `json:"price" binding:"min=0"`
	TaxTypeID *int32  `json:"taxTypeId,omitempty"`
	TaxRate   float64 `json:"taxRate" binding:"min=0"`
}

type AttachPlanRequest struct {
	PlanGlobalID *int32 `json:"plansGlobalId,omitempty"`
	PlanHotelID  *int32 `json:"plansHotelId,omitempty"`
	// Addons omitted attaches the plan's default add-ons; an empty list clears them.
	Addons        []AddonRequest  `json:"addons" binding:"omitempty,dive"`
	ReplaceAddons bool            `json:"replaceAddons"`
	GuestIDs      []uuid.UUID     `json:"guestIds,omitempty"`
	Guests        []ClientRequest `json:"guests,omitempty" binding:"omitempty,dive"`
}

func (r AttachPlanRequest) ToCommand(detailID uuid.UUID) (commands.AttachPlanRequest, error) {
	cmd := commands.AttachPlanRequest{
		DetailID:      detailID,
		Plan:          rate.PlanRef{GlobalID: r.PlanGlobalID, HotelID: r.PlanHotelID},
		ReplaceAddons: r.ReplaceAddons,
		GuestIDs:      r.GuestIDs,
	}
	if r.Addons != nil {
		cmd.Addons = make([]commands.AddonInput, len(r.Addons))
		for i, a := range r.Addons {
			cmd.Addons[i] = commands.AddonInput{
				GlobalID: a.GlobalID,
				HotelRef: a.HotelRef,
				Name:     a.Name,
				Quantity: a.Quantity,
				Price:    a.Price,
				Tax:      rate.Tax{TypeID: a.TaxTypeID, Rate: a.TaxRate},
			}
		}
	}
	for _, g := range r.Guests {
		attrs, err := g.ToAttributes()
		if err != nil {
			return commands.AttachPlanRequest{}, err
		}
		cmd.Guests = append(cmd.Guests, attrs)
	}
	return cmd, nil
}
