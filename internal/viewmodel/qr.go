package viewmodel

import (
	"webtools/internal/domain/models"
	"webtools/internal/services/qr"
)

type (
	Tab       int
	ScanPhase int
)

const (
	TabGenerate Tab = iota
	TabScan
)

const (
	PhaseIdle ScanPhase = iota
	PhaseFileSelected
	PhaseResult
	PhaseError
)

func (p ScanPhase) String() string {
	switch p {
	case PhaseFileSelected:
		return "file selected"
	case PhaseResult:
		return "result"
	case PhaseError:
		return "error"
	default:
		return "idle"
	}
}

// ScanState - Seq растет при каждом выборе файла и смене вкладки,
// завершения со старым Seq отбрасываются
type ScanState struct {
	Phase    ScanPhase
	FileName string
	Result   string
	Error    string
	Seq      uint64
}

type QRState struct {
	Tab        Tab
	Input      string
	Options    models.QROptions
	Generating bool
	// растет при каждом запуске генерации, устаревшие завершения отбрасываются
	GenerateSeq uint64
	Artifact    string
	Error       string
	// запрос, по которому построен Artifact
	Generated models.QRRequest
	Scan      ScanState
}

func NewQRState() QRState {
	return QRState{Options: models.DefaultQROptions()}
}

// Request собирает запрос генерации из текущей формы
func (s QRState) Request() models.QRRequest {
	return models.QRRequest{Text: s.Input, Options: s.Options}
}

func (s QRState) HasArtifact() bool {
	return s.Artifact != ""
}

// Download собирает файл по формату, с которым был построен артефакт
func (s QRState) Download() (models.Download, error) {
	if !s.HasArtifact() {
		return models.Download{}, models.ErrInvalidData
	}
	return qr.Download(s.Generated.Options.OutputFormat, s.Artifact)
}

func (s QRState) CopyText() string {
	if !s.HasArtifact() {
		return ""
	}
	return qr.CopyText(s.Generated, s.Artifact)
}

type QRAction interface {
	qrAction()
}

type (
	SetQRInput        struct{ Text string }
	SetQROptions      struct{ Options models.QROptions }
	GenerateStarted   struct{ Request models.QRRequest }
	GenerateCompleted struct {
		Seq    uint64
		Result models.QRResult
	}
	SwitchTab        struct{ Tab Tab }
	ScanFileSelected struct{ Name string }
	ScanCompleted    struct {
		Seq  uint64
		Text string
	}
	ScanFailed struct {
		Seq     uint64
		Message string
	}
)

func (SetQRInput) qrAction()        {}
func (SetQROptions) qrAction()      {}
func (GenerateStarted) qrAction()   {}
func (GenerateCompleted) qrAction() {}
func (SwitchTab) qrAction()         {}
func (ScanFileSelected) qrAction()  {}
func (ScanCompleted) qrAction()     {}
func (ScanFailed) qrAction()        {}

func ReduceQR(s QRState, a QRAction) QRState {
	switch a := a.(type) {
	case SetQRInput:
		s.Input = a.Text
	case SetQROptions:
		s.Options = a.Options
	case GenerateStarted:
		s.Generating = true
		s.GenerateSeq++
		s.Artifact, s.Error = "", ""
		s.Generated = a.Request
	case GenerateCompleted:
		if !s.Generating || a.Seq != s.GenerateSeq {
			return s
		}
		s.Generating = false
		if a.Result.OK() {
			s.Artifact, s.Error = a.Result.Artifact, ""
		} else {
			s.Artifact, s.Error = "", a.Result.Message
			s.Generated = models.QRRequest{}
		}
	case SwitchTab:
		if a.Tab == s.Tab {
			return s
		}
		s.Tab = a.Tab
		s.Scan = ScanState{Seq: s.Scan.Seq + 1}
	case ScanFileSelected:
		s.Scan = ScanState{
			Phase:    PhaseFileSelected,
			FileName: a.Name,
			Seq:      s.Scan.Seq + 1,
		}
	case ScanCompleted:
		if !s.Scan.pending(a.Seq) {
			return s
		}
		s.Scan.Phase = PhaseResult
		s.Scan.Result = a.Text
	case ScanFailed:
		if !s.Scan.pending(a.Seq) {
			return s
		}
		s.Scan.Phase = PhaseError
		s.Scan.Error = a.Message
	}
	return s
}

func (s ScanState) pending(seq uint64) bool {
	return s.Phase == PhaseFileSelected && s.Seq == seq
}
