// SPDX-License-Identifier: MIT

package bands

import "fmt"

// Stage is a point in the Solver pipeline.
type Stage int

const (
	StageIdle Stage = iota
	StageBasisBuilt
	StageMatrixBuilt
	StageSolving
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageBasisBuilt:
		return "basis_built"
	case StageMatrixBuilt:
		return "matrix_built"
	case StageSolving:
		return "solving"
	case StageDone:
		return "done"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}
