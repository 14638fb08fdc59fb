package ota

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"strconv"
	"strings"
)

// BookingReport is the wire form of one OTA booking notification. The same
// shape arrives as JSON or as XML.
type BookingReport struct {
	XMLName              xml.Name             `json:"-" xml:"AllotmentBookingReport"`
	TransactionType      TransactionTypeWire  `json:"transactionType" xml:"TransactionType"`
	BasicInformation     BasicInformation     `json:"basicInformation" xml:"BasicInformation"`
	BasicRateInformation BasicRateInformation `json:"basicRateInformation" xml:"BasicRateInformation"`
	MemberInformation    *MemberInformation   `json:"memberInformation,omitempty" xml:"MemberInformation"`
	RoomAndGuestList     RoomAndGuestList     `json:"roomAndGuestList" xml:"RoomAndGuestList"`
}

type TransactionTypeWire struct {
	DataFrom           string `json:"dataFrom" xml:"DataFrom"`
	DataClassification string `json:"dataClassification" xml:"DataClassification"`
	DataID             string `json:"dataId" xml:"DataID"`
}

type BasicInformation struct {
	TravelAgencyName           string `json:"travelAgencyName" xml:"TravelAgencyName"`
	TravelAgencyBookingNumber  string `json:"travelAgencyBookingNumber" xml:"TravelAgencyBookingNumber"`
	TravelAgencyBookingDate    string `json:"travelAgencyBookingDate" xml:"TravelAgencyBookingDate"`
	TravelAgencyBookingTime    string `json:"travelAgencyBookingTime" xml:"TravelAgencyBookingTime"`
	GuestOrGroupNameSingleByte string `json:"guestOrGroupNameSingleByte" xml:"GuestOrGroupNameSingleByte"`
	GuestOrGroupNameKanjiName  string `json:"guestOrGroupNameKanjiName" xml:"GuestOrGroupNameKanjiName"`
	CheckInDate                string `json:"checkInDate" xml:"CheckInDate"`
	CheckInTime                string `json:"checkInTime" xml:"CheckInTime"`
	CheckOutDate               string `json:"checkOutDate" xml:"CheckOutDate"`
	Nights                     Number `json:"nights" xml:"Nights"`
	TotalRoomCount             Number `json:"totalRoomCount" xml:"TotalRoomCount"`
	GrandTotalPaxCount         Number `json:"grandTotalPaxCount" xml:"GrandTotalPaxCount"`
	PackagePlanName            string `json:"packagePlanName" xml:"PackagePlanName"`
	PackagePlanCode            string `json:"packagePlanCode" xml:"PackagePlanCode"`
	OtherServiceInformation    string `json:"otherServiceInformation" xml:"OtherServiceInformation"`
}

type BasicRateInformation struct {
	TotalAccommodationCharge Number `json:"totalAccommodationCharge" xml:"TotalAccommodationCharge"`
	PointsDiscount           Number `json:"pointsDiscount" xml:"PointsDiscount"`
	// SettlementDiv is "prepaid" when the OTA collected the balance.
	SettlementDiv      string `json:"settlementDiv" xml:"SettlementDiv"`
	AmountClaimed      Number `json:"amountClaimed" xml:"AmountClaimed"`
	CancellationCharge Number `json:"cancellationCharge" xml:"CancellationCharge"`
}

type MemberInformation struct {
	MemberName        string `json:"memberName" xml:"MemberName"`
	MemberKanjiName   string `json:"memberKanjiName" xml:"MemberKanjiName"`
	MemberKanaName    string `json:"memberKanaName" xml:"MemberKanaName"`
	MemberDateOfBirth string `json:"memberDateOfBirth" xml:"MemberDateOfBirth"`
	MemberGender      string `json:"memberGender" xml:"MemberGender"`
	MemberEmail       string `json:"memberEmail" xml:"MemberEmail"`
	MemberPhone       string `json:"memberPhone" xml:"MemberPhone"`
	CorporateFlag     string `json:"corporateFlag" xml:"CorporateFlag"`
}

type RoomAndGuestList struct {
	Rooms []RoomAndGuest `json:"roomAndGuest" xml:"RoomAndGuest"`
}

type RoomAndGuest struct {
	RoomInformation     RoomInformation       `json:"roomInformation" xml:"RoomInformation"`
	RoomRateInformation []RoomRateInformation `json:"roomRateInformation" xml:"RoomRateInformation"`
	GuestInformation    []GuestInformation    `json:"guestInformation" xml:"GuestInformation"`
}

type RoomInformation struct {
	RoomTypeCode         string `json:"roomTypeCode" xml:"RoomTypeCode"`
	NetRoomTypeGroupCode string `json:"netRoomTypeGroupCode" xml:"NetRoomTypeGroupCode"`
	RoomTypeName         string `json:"roomTypeName" xml:"RoomTypeName"`
	PerRoomPaxCount      Number `json:"perRoomPaxCount" xml:"PerRoomPaxCount"`
	PlanGroupCode        string `json:"planGroupCode" xml:"PlanGroupCode"`
}

type RoomRateInformation struct {
	RoomDate         string `json:"roomDate" xml:"RoomDate"`
	PerPaxRate       Number `json:"perPaxRate" xml:"PerPaxRate"`
	TotalPerRoomRate Number `json:"totalPerRoomRate" xml:"TotalPerRoomRate"`
	PaxCount         Number `json:"paxCount" xml:"PaxCount"`
}

type GuestInformation struct {
	GuestNameSingleByte string `json:"guestNameSingleByte" xml:"GuestNameSingleByte"`
	GuestKanjiName      string `json:"guestKanjiName" xml:"GuestKanjiName"`
	GuestGender         string `json:"guestGender" xml:"GuestGender"`
	GuestDateOfBirth    string `json:"guestDateOfBirth" xml:"GuestDateOfBirth"`
	GuestEmail          string `json:"guestEmail" xml:"GuestEmail"`
	GuestPhoneNumber    string `json:"guestPhoneNumber" xml:"GuestPhoneNumber"`
}

// Number is a decimal that feeds send either as a JSON number or as text.
type Number string

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = Number(strings.TrimSpace(s))
		return nil
	}
	*n = Number(b)
	return nil
}

func (n Number) IsEmpty() bool {
	return strings.TrimSpace(string(n)) == ""
}

func (n Number) Float() (float64, error) {
	if n.IsEmpty() {
		return 0, nil
	}
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(string(n)), ",", ""), 64)
}

func (n Number) Int() (int, error) {
	f, err := n.Float()
	if err != nil {
		return 0, err
	}
	return int(f), nil
}
