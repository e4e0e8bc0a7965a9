package scan

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"webtools/internal/domain/models"
	"webtools/internal/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func multipartBody(t *testing.T, field string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, "code.png")
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestHandlerScan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScanner := mocks.NewMockServiceQRScanner(ctrl)
	log := zerolog.Nop()

	tests := []struct {
		name         string
		field        string
		setupMock    func()
		expectedCode int
		expectedBody string
	}{
		{
			name:  "успешный скан",
			field: "file",
			setupMock: func() {
				mockScanner.EXPECT().
					Scan(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r io.Reader) (string, error) {
						data, _ := io.ReadAll(r)
						if string(data) != "image bytes" {
							return "", models.ErrReadFile
						}
						return "https://example.com", nil
					})
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"result":"https://example.com"}`,
		},
		{
			name:  "QR код не найден",
			field: "file",
			setupMock: func() {
				mockScanner.EXPECT().Scan(gomock.Any(), gomock.Any()).Return("", models.ErrNoQRCode)
			},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"error":"No QR code found in image."}`,
		},
		{
			name:  "ошибка чтения",
			field: "file",
			setupMock: func() {
				mockScanner.EXPECT().Scan(gomock.Any(), gomock.Any()).Return("", models.ErrReadFile)
			},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"error":"Failed to read file."}`,
		},
		{
			name:         "нет поля file",
			field:        "image",
			setupMock:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"multipart field \"file\" is required"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			body, contentType := multipartBody(t, tt.field, []byte("image bytes"))
			req := httptest.NewRequest(http.MethodPost, "/api/qr/scan", body)
			req.Header.Set("Content-Type", contentType)

			rr := httptest.NewRecorder()
			HandlerScan(mockScanner, &log, 1<<20)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedBody, strings.TrimSpace(rr.Body.String()))
		})
	}
}

func TestHandlerScan_TooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// сканер не должен вызываться
	mockScanner := mocks.NewMockServiceQRScanner(ctrl)
	log := zerolog.Nop()

	body, contentType := multipartBody(t, "file", bytes.Repeat([]byte("x"), 4096))
	req := httptest.NewRequest(http.MethodPost, "/api/qr/scan", body)
	req.Header.Set("Content-Type", contentType)

	rr := httptest.NewRecorder()
	HandlerScan(mockScanner, &log, 1024)(rr, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.Equal(t, `{"error":"image is larger than 1024 bytes"}`, strings.TrimSpace(rr.Body.String()))
}
