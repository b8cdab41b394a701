package request_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gateway/core/event"
	"github.com/dmitrymomot/gateway/core/request"
)

func TestHeaders_CaseInsensitiveLookup(t *testing.T) {
	t.Parallel()

	h := request.NewHeaders()
	h.Add("Content-Type", "application/json")
	h.Add("X-Token", "abc")

	assert.Equal(t, "application/json", h.Get("content-type"))
	assert.Equal(t, "application/json", h.Get("CONTENT-TYPE"))
	assert.Equal(t, "abc", h.Get("x-token"))
	assert.True(t, h.Has("X-TOKEN"))
	assert.False(t, h.Has("authorization"))
	assert.Equal(t, "", h.Get("authorization"))
}

func TestHeaders_DuplicatesPreserveOrder(t *testing.T) {
	t.Parallel()

	h := request.NewHeaders()
	h.Add("Set-Cookie", "a=1")
	h.Add("X-Other", "x")
	h.Add("set-cookie", "b=2")

	assert.Equal(t, []string{"a=1", "b=2"}, h.Values("Set-Cookie"))
	assert.Equal(t, "a=1", h.Get("set-cookie"))
	assert.Equal(t, 3, h.Len())

	fields := h.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, "Set-Cookie", fields[0].Name)
	assert.Equal(t, "X-Other", fields[1].Name)
	assert.Equal(t, "set-cookie", fields[2].Name)
}

func TestDecodeHeaders(t *testing.T) {
	t.Parallel()

	raw := []event.Header{
		{[]byte("host"), []byte("example.com")},
		{[]byte("accept"), []byte("*/*")},
		// 0xE9 is é in Latin-1
		{[]byte("x-name"), []byte{0xE9}},
	}

	h, err := request.DecodeHeaders(raw)
	require.NoError(t, err)
	assert.Equal(t, "example.com", h.Get("Host"))
	assert.Equal(t, "*/*", h.Get("accept"))
	assert.Equal(t, "é", h.Get("x-name"))
}

func TestHeaders_EncodeRoundTrip(t *testing.T) {
	t.Parallel()

	h := request.NewHeaders()
	h.Add("content-type", "text/plain")
	h.Add("x-name", "é")

	wire, err := h.Encode()
	require.NoError(t, err)
	require.Len(t, wire, 2)
	assert.Equal(t, []byte("content-type"), wire[0][0])
	assert.Equal(t, []byte("text/plain"), wire[0][1])
	assert.Equal(t, []byte{0xE9}, wire[1][1])

	back, err := request.DecodeHeaders(wire)
	require.NoError(t, err)
	assert.Equal(t, "é", back.Get("x-name"))
}

func TestHeaders_EncodeRejectsNonLatin1(t *testing.T) {
	t.Parallel()

	h := request.NewHeaders()
	h.Add("x-emoji", "☃") // snowman is outside Latin-1

	_, err := h.Encode()
	require.Error(t, err)
}
