package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileResponseHandlerContentType(t *testing.T) {
	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 16)...)
	jpeg := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}

	tests := []struct {
		name        string
		data        []byte
		contentType string
		want        string
	}{
		{name: "png sniffed", data: png, want: "image/png"},
		{name: "jpeg sniffed", data: jpeg, want: "image/jpeg"},
		{name: "explicit wins", data: png, contentType: "application/pdf", want: "application/pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			h := FileResponseHandler{status: http.StatusOK, filename: "profile_picture", contentType: tt.contentType}
			require.NoError(t, h.Handle(c, tt.data))

			assert.Equal(t, tt.want, rec.Header().Get(echo.HeaderContentType))
			assert.Equal(t, "inline; filename=profile_picture", rec.Header().Get("Content-Disposition"))
			assert.Equal(t, tt.data, rec.Body.Bytes())
		})
	}
}
