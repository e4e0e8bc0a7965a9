package viewmodel

import (
	"testing"

	"webtools/internal/domain/models"

	"github.com/stretchr/testify/assert"
)

func reduceEncoderAll(actions ...EncoderAction) EncoderState {
	var s EncoderState
	for _, a := range actions {
		s = ReduceEncoder(s, a)
	}
	return s
}

func TestReduceEncoder(t *testing.T) {
	tests := []struct {
		name       string
		actions    []EncoderAction
		wantOutput string
		wantError  string
	}{
		{
			name:       "encode modern",
			actions:    []EncoderAction{SetInput{Text: "a b"}, SubmitEncode{}},
			wantOutput: "a%20b",
		},
		{
			name:       "encode legacy",
			actions:    []EncoderAction{SetInput{Text: "ü!"}, SetAlgorithm{Algorithm: models.AlgorithmLegacy}, SubmitEncode{}},
			wantOutput: "%FC%21",
		},
		{
			name:      "ошибка декодирования",
			actions:   []EncoderAction{SetInput{Text: "%"}, SetMode{Mode: models.ModeDecode}, SubmitEncode{}},
			wantError: "Error decoding text: malformed escape sequence at position 0: expected two hex digits after %",
		},
		{
			name: "ошибка заменяется результатом",
			actions: []EncoderAction{
				SetMode{Mode: models.ModeDecode},
				SetInput{Text: "%E0"}, SubmitEncode{},
				SetInput{Text: "%E2%82%AC"}, SubmitEncode{},
			},
			wantOutput: "€",
		},
		{
			name: "результат заменяется ошибкой",
			actions: []EncoderAction{
				SetMode{Mode: models.ModeDecode},
				SetInput{Text: "ok"}, SubmitEncode{},
				SetInput{Text: "%zz"}, SubmitEncode{},
			},
			wantError: "Error decoding text: malformed escape sequence at position 0: expected two hex digits after %",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reduceEncoderAll(tt.actions...)

			assert.Equal(t, tt.wantOutput, got.Output)
			assert.Equal(t, tt.wantError, got.Error)
			assert.False(t, got.Output != "" && got.Error != "", "output and error must not be shown together")
		})
	}
}

func TestReduceEncoder_Clear(t *testing.T) {
	got := reduceEncoderAll(
		SetAlgorithm{Algorithm: models.AlgorithmLegacy},
		SetMode{Mode: models.ModeDecode},
		SetInput{Text: "%41"},
		SubmitEncode{},
		ClearEncoder{},
	)

	assert.Equal(t, EncoderState{Mode: models.ModeDecode, Algorithm: models.AlgorithmLegacy}, got)
}
