package viewmodel

import (
	"context"
	"io"
	"sync"

	"webtools/internal/domain/models"
	"webtools/internal/services/qr"
)

type Generator interface {
	Generate(ctx context.Context, req models.QRRequest) models.QRResult
}

type Scanner interface {
	Scan(ctx context.Context, r io.Reader) (string, error)
}

// Store держит состояние обоих виджетов и выполняет эффекты
// (генерация, скан), которые редьюсеры делать не должны
type Store struct {
	mu        sync.Mutex
	encoder   EncoderState
	qr        QRState
	generator Generator
	scanner   Scanner
}

func NewStore(generator Generator, scanner Scanner) *Store {
	return &Store{
		qr:        NewQRState(),
		generator: generator,
		scanner:   scanner,
	}
}

func (s *Store) Encoder() EncoderState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.encoder
}

func (s *Store) QR() QRState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.qr
}

func (s *Store) DispatchEncoder(a EncoderAction) EncoderState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.encoder = ReduceEncoder(s.encoder, a)
	return s.encoder
}

func (s *Store) DispatchQR(a QRAction) QRState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.qr = ReduceQR(s.qr, a)
	return s.qr
}

// Generate строит QR код по текущей форме. Если пока он строился, запустили
// новую генерацию, результат отбрасывается.
func (s *Store) Generate(ctx context.Context) QRState {
	req := s.QR().Request()
	seq := s.DispatchQR(GenerateStarted{Request: req}).GenerateSeq

	res := s.generator.Generate(ctx, req)
	return s.DispatchQR(GenerateCompleted{Seq: seq, Result: res})
}

// SelectScanFile переводит скан в FileSelected и возвращает его Seq
func (s *Store) SelectScanFile(name string) uint64 {
	return s.DispatchQR(ScanFileSelected{Name: name}).Scan.Seq
}

// RunScan распознает файл, выбранный под номером seq. Если за время скана
// вкладку переключили или выбрали другой файл, результат отбрасывается.
func (s *Store) RunScan(ctx context.Context, seq uint64, r io.Reader) QRState {
	text, err := s.scanner.Scan(ctx, r)
	if err != nil {
		return s.DispatchQR(ScanFailed{Seq: seq, Message: qr.ScanErrorMessage(err)})
	}
	return s.DispatchQR(ScanCompleted{Seq: seq, Text: text})
}

func (s *Store) Scan(ctx context.Context, name string, r io.Reader) QRState {
	return s.RunScan(ctx, s.SelectScanFile(name), r)
}
