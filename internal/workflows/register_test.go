package workflows_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-token-gate/internal/mocks"
	"github.com/feral-file/ff-token-gate/internal/workflows"
)

type countingRegistry struct {
	workflows  int
	activities int
}

func (r *countingRegistry) RegisterWorkflow(interface{}) { r.workflows++ }
func (r *countingRegistry) RegisterActivity(interface{}) { r.activities++ }

func TestRegister(t *testing.T) {
	r := &countingRegistry{}
	workflows.Register(r, mocks.NewMockExecutor(gomock.NewController(t)))

	assert.Equal(t, 2, r.workflows)
	assert.Equal(t, 4, r.activities)
}
