//go:build !cgo

package hal

import "github.com/pkg/errors"

func RunWindow(_ ProgramFactory, _ WindowConfig) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
