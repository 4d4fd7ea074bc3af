//go:build !((linux && cgo) || windows || darwin)

package sink

import "github.com/gigurra/morse/cmd/common/logging"

// AudioAvailable indicates whether tone playback is compiled in.
// Audio requires CGO for native sound libraries on Linux.
const AudioAvailable = false

// NewAudio returns a Bell, since this build has no audio backend.
func NewAudio(opts Options) Sink {
	logging.L().Info().Msg("audio requires CGO on Linux, using bell")
	return NewBell(opts)
}
