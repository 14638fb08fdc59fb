//go:build unit

package ota_test

import (
	"testing"

	"hotel-pms/internal/domain/client"
	"hotel-pms/internal/domain/money"
	"hotel-pms/internal/domain/ota"
	"hotel-pms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonBooking = `{
  "transactionType": {"dataFrom": "FromTravelAgency", "dataClassification": "NewBookReport", "dataId": "A1"},
  "basicInformation": {
    "travelAgencyName": "Rakuten",
    "travelAgencyBookingNumber": " RK-0001 ",
    "guestOrGroupNameSingleByte": "YAMADA TARO",
    "checkInDate": "2030/04/10",
    "checkInTime": "15:00",
    "checkOutDate": "2030-04-12",
    "nights": 2,
    "totalRoomCount": "1",
    "grandTotalPaxCount": 2,
    "packagePlanCode": "P-BF",
    "packagePlanName": "Breakfast",
    "otherServiceInformation": "late arrival"
  },
  "basicRateInformation": {
    "totalAccommodationCharge": "24,000",
    "pointsDiscount": 500,
    "settlementDiv": "prepaid",
    "amountClaimed": 23500
  },
  "memberInformation": {"memberName": "Yamada Taro", "memberEmail": "TARO@example.com", "memberGender": "0", "corporateFlag": "0"},
  "roomAndGuestList": {"roomAndGuest": [{
    "roomInformation": {"roomTypeCode": "TWN", "perRoomPaxCount": 2},
    "roomRateInformation": [
      {"roomDate": "2030-04-11", "perPaxRate": 6000, "paxCount": 2},
      {"roomDate": "2030-04-10", "totalPerRoomRate": "12000"}
    ],
    "guestInformation": [{"guestNameSingleByte": "YAMADA HANAKO", "guestGender": "1"}, {"guestNameSingleByte": " "}]
  }]}
}`

const xmlCancel = `<?xml version="1.0" encoding="UTF-8"?>
<AllotmentBookingReport>
  <TransactionType><DataClassification>CancellationReport</DataClassification></TransactionType>
  <BasicInformation>
    <TravelAgencyBookingNumber>RK-0001</TravelAgencyBookingNumber>
    <CheckInDate>2030-04-10</CheckInDate>
    <CheckOutDate>2030-04-12</CheckOutDate>
  </BasicInformation>
  <BasicRateInformation><CancellationCharge>3000</CancellationCharge></BasicRateInformation>
</AllotmentBookingReport>`

func TestDecodeJSON(t *testing.T) {
	b, err := ota.Decode("application/json; charset=utf-8", []byte(jsonBooking))
	require.NoError(t, err)

	assert.Equal(t, ota.TransactionNew, b.Transaction)
	assert.Equal(t, "RK-0001", b.BookingRef)
	assert.Equal(t, "Rakuten", b.Agent)
	assert.Equal(t, 2, b.Stay.NumNights())
	assert.Equal(t, "15:00", *b.CheckInTime)
	assert.Equal(t, 2, b.People)
	assert.Equal(t, money.FromFloat(500), b.PointsDiscount)
	assert.Equal(t, money.FromFloat(23500), b.Prepaid)

	assert.Equal(t, "Yamada Taro", b.Booker.Name)
	assert.Equal(t, "taro@example.com", *b.Booker.Email)
	assert.Equal(t, client.GenderMale, b.Booker.Gender)
	assert.Equal(t, client.PersonNatural, b.Booker.Person)

	require.Len(t, b.Rooms, 1)
	r := b.Rooms[0]
	assert.Equal(t, "TWN", r.RoomTypeCode)
	assert.Equal(t, "P-BF", r.PlanCode)
	require.Len(t, r.Nights, 2)
	assert.Equal(t, "2030-04-10", r.Nights[0].Date.Format("2006-01-02"))
	assert.Equal(t, money.FromFloat(12000), r.Nights[0].Price)
	assert.Equal(t, money.FromFloat(12000), r.Nights[1].Price)
	assert.Equal(t, money.FromFloat(24000), r.Total())
	require.Len(t, r.Guests, 1)
	assert.Equal(t, client.GenderFemale, r.Guests[0].Gender)
}

func TestDecodeXMLCancel(t *testing.T) {
	b, err := ota.Decode("", []byte(xmlCancel))
	require.NoError(t, err)

	assert.Equal(t, ota.TransactionCancel, b.Transaction)
	assert.Equal(t, money.FromFloat(3000), b.CancellationCharge)
	assert.Empty(t, b.Rooms)
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name  string
		ct    string
		body  string
		errIs error
	}{
		{name: "broken json", ct: "application/json", body: `{"transactionType":`, errIs: ota.ErrMalformedPayload},
		{name: "broken xml", ct: "text/xml", body: `<AllotmentBookingReport>`, errIs: ota.ErrMalformedPayload},
		{
			name:  "unknown transaction",
			body:  `{"transactionType":{"dataClassification":"Reminder"},"basicInformation":{"travelAgencyBookingNumber":"X"}}`,
			errIs: ota.ErrUnknownTransaction,
		},
		{
			name:  "missing booking number",
			body:  `{"transactionType":{"dataClassification":"NewBookReport"}}`,
			errIs: ota.ErrMissingBookingRef,
		},
		{
			name: "no rooms",
			body: `{"transactionType":{"dataClassification":"NewBookReport"},
				"basicInformation":{"travelAgencyBookingNumber":"X","guestOrGroupNameSingleByte":"A","checkInDate":"2030-04-10","checkOutDate":"2030-04-11"}}`,
			errIs: ota.ErrInvalidPayloadData,
		},
		{
			name: "night outside the stay",
			body: `{"transactionType":{"dataClassification":"NewBookReport"},
				"basicInformation":{"travelAgencyBookingNumber":"X","guestOrGroupNameSingleByte":"A","checkInDate":"2030-04-10","checkOutDate":"2030-04-11"},
				"roomAndGuestList":{"roomAndGuest":[{"roomInformation":{"roomTypeCode":"S","perRoomPaxCount":1},
				"roomRateInformation":[{"roomDate":"2030-04-11","totalPerRoomRate":1}]}]}}`,
			errIs: ota.ErrInvalidPayloadData,
		},
		{
			name: "missing night rate",
			body: `{"transactionType":{"dataClassification":"NewBookReport"},
				"basicInformation":{"travelAgencyBookingNumber":"X","guestOrGroupNameSingleByte":"A","checkInDate":"2030-04-10","checkOutDate":"2030-04-12"},
				"roomAndGuestList":{"roomAndGuest":[{"roomInformation":{"roomTypeCode":"S","perRoomPaxCount":1},
				"roomRateInformation":[{"roomDate":"2030-04-10","totalPerRoomRate":1}]}]}}`,
			errIs: ota.ErrInvalidPayloadData,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ota.Decode(tc.ct, []byte(tc.body))

			require.Error(t, err)
			assert.True(t, errs.Is(err, tc.errIs), "got %v", err)
			assert.True(t, errs.Is(err, errs.ErrExternalData))
		})
	}
}

func TestParseTransactionType(t *testing.T) {
	for in, want := range map[string]ota.TransactionType{
		"NewBookReport":      ota.TransactionNew,
		"modificationreport": ota.TransactionEdit,
		" cancel ":           ota.TransactionCancel,
	} {
		got, err := ota.ParseTransactionType(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestNumber(t *testing.T) {
	var n ota.Number
	require.NoError(t, n.UnmarshalJSON([]byte(`"1,200.5"`)))
	f, err := n.Float()
	require.NoError(t, err)
	assert.Equal(t, 1200.5, f)

	require.NoError(t, n.UnmarshalJSON([]byte(`null`)))
	assert.True(t, n.IsEmpty())
}
