package qr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"testing/iotest"
	"time"

	"webtools/internal/domain/models"
	"webtools/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestQRService_Scan(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDecoder := mocks.NewMockDecoder(ctrl)
	service := NewQRService(nil, mockDecoder, time.Millisecond)

	t.Run("успешное распознавание", func(t *testing.T) {
		mockDecoder.EXPECT().
			Decode(gomock.Any(), []byte("png bytes")).
			Return("https://example.com", nil)

		got, err := service.Scan(context.Background(), bytes.NewReader([]byte("png bytes")))
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", got)
	})

	t.Run("ошибка чтения файла", func(t *testing.T) {
		_, err := service.Scan(context.Background(), iotest.ErrReader(errors.New("disk gone")))
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrReadFile)
		assert.Equal(t, "Failed to read file.", ScanErrorMessage(err))
	})

	t.Run("QR код не найден", func(t *testing.T) {
		mockDecoder.EXPECT().
			Decode(gomock.Any(), gomock.Any()).
			Return("", fmt.Errorf("%w: NotFoundException", models.ErrNoQRCode))

		_, err := service.Scan(context.Background(), bytes.NewReader([]byte("blank")))
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrNoQRCode)
		assert.Equal(t, "No QR code found in image.", ScanErrorMessage(err))
	})
}

func TestQRService_Scan_CancelledDuringDelay(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Декодер не должен вызываться
	mockDecoder := mocks.NewMockDecoder(ctrl)
	service := NewQRService(nil, mockDecoder, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := service.Scan(ctx, bytes.NewReader([]byte("png")))
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "Scan cancelled.", ScanErrorMessage(err))
}

func TestScanErrorMessage_Unknown(t *testing.T) {
	assert.Equal(t, "Failed to decode image.", ScanErrorMessage(errors.New("weird")))
	assert.Equal(t, "Unsupported image format.", ScanErrorMessage(fmt.Errorf("%w: bmp", models.ErrInvalidData)))
}
