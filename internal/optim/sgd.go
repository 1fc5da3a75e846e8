package optim

import (
	"fmt"

	"github.com/born-ml/minigrad/internal/nn"
)

// SGD implements Stochastic Gradient Descent optimizer with optional momentum
// and linear learning-rate decay.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// With Decay > 0 and Steps > 0 the learning rate after t steps is
//
//	lr_t = LR * (1 - Decay * t / Steps)
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:    1.0,
//	    Decay: 0.9,
//	    Steps: 100,
//	})
type SGD struct {
	params     []*nn.Parameter
	config     SGDConfig
	velocities map[*nn.Parameter]float64
	step       int
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
	Decay    float64 // Fraction of LR removed linearly over Steps (default: 0)
	Steps    int     // Schedule length for Decay
}

// NewSGD creates a new SGD optimizer.
//
// Parameters:
//   - params: Model parameters to optimize
//   - config: SGD configuration (LR, Momentum, Decay, Steps)
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:     params,
		config:     config,
		velocities: make(map[*nn.Parameter]float64),
	}
}

// Step performs a single optimization step.
//
// Applies gradient descent update to all parameters:
//   - Without momentum: param -= lr * grad
//   - With momentum: velocity = momentum * velocity + grad, param -= lr * velocity
func (s *SGD) Step() {
	lr := s.GetLR()
	for _, param := range s.params {
		update := param.Grad()
		if s.config.Momentum != 0 {
			update += s.config.Momentum * s.velocities[param]
			s.velocities[param] = update
		}
		param.SetData(param.Data() - lr*update)
	}
	s.step++
}

// ZeroGrad clears all parameter gradients.
func (s *SGD) ZeroGrad() {
	zeroGrad(s.params)
}

// GetLR returns the learning rate for the next step.
func (s *SGD) GetLR() float64 {
	if s.config.Decay == 0 || s.config.Steps <= 0 {
		return s.config.LR
	}
	return s.config.LR * (1 - s.config.Decay*float64(s.step)/float64(s.config.Steps))
}

// StepCount returns the number of steps taken.
func (s *SGD) StepCount() int {
	return s.step
}

// String implements fmt.Stringer.
func (s *SGD) String() string {
	return fmt.Sprintf("SGD(lr=%g, momentum=%g, decay=%g)", s.config.LR, s.config.Momentum, s.config.Decay)
}
