package qrcode

import (
	"bytes"
	"strings"
	"testing"

	"cityquest/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLocation() *entity.Location {
	return &entity.Location{
		ID:        uuid.MustParse("5b1f3e46-9c6c-4f4b-8a2e-2f1d1c0a9b77"),
		Name:      "Rose Square",
		Address:   "Rožu laukums, Liepāja",
		Latitude:  56.5110,
		Longitude: 21.0138,
		Points:    10,
	}
}

func TestQRCodeService_EncodeDecodeRoundTrip(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	location := testLocation()

	payload, err := svc.EncodeLocationPayload(location)
	require.NoError(t, err)

	decoded, err := svc.DecodeLocationPayload(payload)
	require.NoError(t, err)
	assert.Equal(t, location.ID.String(), decoded.ID)
	assert.Equal(t, location.Name, decoded.Name)
	assert.Equal(t, location.Address, decoded.Address)
	assert.Equal(t, location.Latitude, decoded.Latitude)
	assert.Equal(t, location.Longitude, decoded.Longitude)
	assert.Equal(t, location.Points, decoded.Points)
}

func TestQRCodeService_EncodeIsDeterministic(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	location := testLocation()

	first, err := svc.EncodeLocationPayload(location)
	require.NoError(t, err)
	second, err := svc.EncodeLocationPayload(location)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestQRCodeService_DecodeLegacyPayload(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	// Artifacts printed before payloads carried an ID.
	legacy := `{"name":"Rose Square","address":"Rožu laukums, Liepāja","latitude":56.511,"longitude":21.0138,"points":10}`
	decoded, err := svc.DecodeLocationPayload(legacy)
	require.NoError(t, err)
	assert.Empty(t, decoded.ID)
	assert.Equal(t, "Rose Square", decoded.Name)
	assert.Equal(t, 10, decoded.Points)
}

func TestQRCodeService_DecodeInvalidPayloads(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	testCases := []struct {
		name   string
		qrData string
	}{
		{"not json", "https://example.com/some-random-qr"},
		{"empty string", ""},
		{"missing name", `{"address":"somewhere","latitude":1,"longitude":2,"points":5}`},
		{"latitude out of range", `{"name":"X","latitude":95.0,"longitude":2,"points":5}`},
		{"longitude out of range", `{"name":"X","latitude":1,"longitude":190.0,"points":5}`},
		{"negative points", `{"name":"X","latitude":1,"longitude":2,"points":-5}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			decoded, err := svc.DecodeLocationPayload(tc.qrData)
			assert.Error(t, err)
			assert.Nil(t, decoded)
		})
	}
}

func TestQRCodeService_DecodeNegativePoints(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	decoded, err := svc.DecodeLocationPayload(`{"name":"X","latitude":1,"longitude":2,"points":-5}`)
	assert.Nil(t, decoded)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPoints)
}

func TestQRCodeService_RenderLocationQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	pngBytes, err := svc.RenderLocationQR(testLocation())
	require.NoError(t, err)
	assert.NotEmpty(t, pngBytes)

	// PNG magic header.
	assert.True(t, bytes.HasPrefix(pngBytes, []byte{0x89, 0x50, 0x4E, 0x47}))
}

func TestQRCodeService_RenderOversizedPayload(t *testing.T) {
	svc := NewQRCodeService(256, "H")

	// A name this long cannot fit any QR version at the highest correction level.
	location := testLocation()
	location.Name = strings.Repeat("a", 4000)

	pngBytes, err := svc.RenderLocationQR(location)
	assert.Nil(t, pngBytes)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPayloadTooLarge)
}

func TestQRCodeService_DefaultErrorCorrectionLevel(t *testing.T) {
	// Unknown levels fall back to Medium rather than failing.
	svc := NewQRCodeService(256, "unknown")

	pngBytes, err := svc.RenderLocationQR(testLocation())
	require.NoError(t, err)
	assert.NotEmpty(t, pngBytes)
}
