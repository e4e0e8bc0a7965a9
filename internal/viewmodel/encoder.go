// Package viewmodel - состояние обоих виджетов без привязки к UI фреймворку.
// Редьюсеры чистые: (state, action) -> state.
package viewmodel

import (
	"webtools/internal/domain/models"
	"webtools/internal/services/transformer"
)

type EncoderState struct {
	Input     string
	Mode      models.Mode
	Algorithm models.Algorithm
	Output    string
	Error     string
}

type EncoderAction interface {
	encoderAction()
}

type (
	SetInput     struct{ Text string }
	SetMode      struct{ Mode models.Mode }
	SetAlgorithm struct{ Algorithm models.Algorithm }
	SubmitEncode struct{}
	ClearEncoder struct{}
)

func (SetInput) encoderAction()     {}
func (SetMode) encoderAction()      {}
func (SetAlgorithm) encoderAction() {}
func (SubmitEncode) encoderAction() {}
func (ClearEncoder) encoderAction() {}

func ReduceEncoder(s EncoderState, a EncoderAction) EncoderState {
	switch a := a.(type) {
	case SetInput:
		s.Input = a.Text
	case SetMode:
		s.Mode = a.Mode
	case SetAlgorithm:
		s.Algorithm = a.Algorithm
	case SubmitEncode:
		res := transformer.Transform(models.EncodeRequest{
			Text:      s.Input,
			Mode:      s.Mode,
			Algorithm: s.Algorithm,
		})
		if res.OK() {
			s.Output, s.Error = res.Text, ""
		} else {
			s.Output, s.Error = "", res.Message
		}
	case ClearEncoder:
		s = EncoderState{Mode: s.Mode, Algorithm: s.Algorithm}
	}
	return s
}
