package ai

import (
	"fmt"
	"math"

	"snake-engine/game/types"

	"golang.org/x/exp/rand"
	"gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

const (
	dqnLearningRate = 0.005
	dqnDiscount     = 0.95
	dqnTau          = 0.01 // soft update rate of the target network
	gradientClip    = 0.5
	hiddenSize      = 12
	inputFeatures   = 7 // food direction (2), food distance, danger per action (4)
)

// network is a one-hidden-layer perceptron trained one transition at a time
type network struct {
	g      *gorgonia.ExprGraph
	x, y   *gorgonia.Node
	pred   *gorgonia.Node
	params gorgonia.Nodes
	vm     gorgonia.VM
	solver gorgonia.Solver
}

func newNetwork(rng *rand.Rand) (*network, error) {
	g := gorgonia.NewGraph()
	outputs := len(Actions)

	x := gorgonia.NewMatrix(g, tensor.Float64, gorgonia.WithShape(1, inputFeatures), gorgonia.WithName("x"))
	y := gorgonia.NewMatrix(g, tensor.Float64, gorgonia.WithShape(1, outputs), gorgonia.WithName("y"))

	w1 := weights(g, rng, "w1", inputFeatures, hiddenSize)
	b1 := gorgonia.NewMatrix(g, tensor.Float64,
		gorgonia.WithShape(1, hiddenSize),
		gorgonia.WithName("b1"),
		gorgonia.WithInit(gorgonia.Zeroes()))
	w2 := weights(g, rng, "w2", hiddenSize, outputs)
	b2 := gorgonia.NewMatrix(g, tensor.Float64,
		gorgonia.WithShape(1, outputs),
		gorgonia.WithName("b2"),
		gorgonia.WithInit(gorgonia.Zeroes()))

	// Hidden layer with ReLU
	h := gorgonia.Must(gorgonia.Mul(x, w1))
	h = gorgonia.Must(gorgonia.Add(h, b1))
	h = gorgonia.Must(gorgonia.Rectify(h))

	pred := gorgonia.Must(gorgonia.Mul(h, w2))
	pred = gorgonia.Must(gorgonia.Add(pred, b2))

	// MSE loss against the target row
	diff := gorgonia.Must(gorgonia.Sub(pred, y))
	loss := gorgonia.Must(gorgonia.Mean(gorgonia.Must(gorgonia.Square(diff))))

	params := gorgonia.Nodes{w1, b1, w2, b2}
	if _, err := gorgonia.Grad(loss, params...); err != nil {
		return nil, fmt.Errorf("failed to build gradients: %w", err)
	}

	return &network{
		g:      g,
		x:      x,
		y:      y,
		pred:   pred,
		params: params,
		vm:     gorgonia.NewTapeMachine(g, gorgonia.BindDualValues(params...)),
		solver: gorgonia.NewAdamSolver(
			gorgonia.WithLearnRate(dqnLearningRate),
			gorgonia.WithL2Reg(1e-6),
			gorgonia.WithClip(gradientClip)),
	}, nil
}

// weights creates a Glorot-uniform matrix drawn from rng so a seed fixes the
// starting network.
func weights(g *gorgonia.ExprGraph, rng *rand.Rand, name string, rows, cols int) *gorgonia.Node {
	limit := math.Sqrt(6 / float64(rows+cols))
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = (rng.Float64()*2 - 1) * limit
	}
	return gorgonia.NewMatrix(g, tensor.Float64,
		gorgonia.WithShape(rows, cols),
		gorgonia.WithName(name),
		gorgonia.WithValue(tensor.New(tensor.WithShape(rows, cols), tensor.WithBacking(data))))
}

// run feeds one input row and target row through the graph and returns the
// prediction. With step set the solver also moves the weights towards target.
func (n *network) run(features, target []float64, step bool) ([]float64, error) {
	defer n.vm.Reset()

	in := append([]float64(nil), features...)
	want := append([]float64(nil), target...)
	if err := gorgonia.Let(n.x, tensor.New(tensor.WithShape(1, inputFeatures), tensor.WithBacking(in))); err != nil {
		return nil, fmt.Errorf("bind input: %w", err)
	}
	if err := gorgonia.Let(n.y, tensor.New(tensor.WithShape(1, len(Actions)), tensor.WithBacking(want))); err != nil {
		return nil, fmt.Errorf("bind target: %w", err)
	}
	if err := n.vm.RunAll(); err != nil {
		return nil, fmt.Errorf("forward pass error: %w", err)
	}

	data, ok := n.pred.Value().Data().([]float64)
	if !ok {
		return nil, fmt.Errorf("invalid prediction type %T", n.pred.Value().Data())
	}
	pred := append([]float64(nil), data...)

	if step {
		if err := n.solver.Step(gorgonia.NodesToValueGrads(n.params)); err != nil {
			return nil, fmt.Errorf("solver step: %w", err)
		}
	}
	return pred, nil
}

func (n *network) predict(features []float64) ([]float64, error) {
	return n.run(features, make([]float64, len(Actions)), false)
}

func (n *network) train(features, target []float64) error {
	_, err := n.run(features, target, true)
	return err
}

// blend moves every parameter of n towards src by tau
func (n *network) blend(src *network, tau float64) {
	for i, p := range n.params {
		dst := p.Value().Data().([]float64)
		from := src.params[i].Value().Data().([]float64)
		for j := range dst {
			dst[j] = tau*from[j] + (1-tau)*dst[j]
		}
	}
}

// DQNBrain approximates action values with a small neural network and a
// softly updated target network. Weights live in memory only.
type DQNBrain struct {
	Discount float64
	Tau      float64

	grid   types.Grid
	online *network
	target *network
}

func NewDQNBrain(grid types.Grid, seed uint64) (*DQNBrain, error) {
	rng := rand.New(rand.NewSource(seed))
	online, err := newNetwork(rng)
	if err != nil {
		return nil, err
	}
	target, err := newNetwork(rng)
	if err != nil {
		return nil, err
	}
	target.blend(online, 1)

	return &DQNBrain{
		Discount: dqnDiscount,
		Tau:      dqnTau,
		grid:     grid,
		online:   online,
		target:   target,
	}, nil
}

func (b *DQNBrain) Values(s State) ([4]float64, error) {
	var values [4]float64
	pred, err := b.online.predict(b.features(s))
	if err != nil {
		return values, err
	}
	copy(values[:], pred)
	return values, nil
}

func (b *DQNBrain) Learn(s State, action int, reward float64, next State, done bool) error {
	in := b.features(s)
	target, err := b.online.predict(in)
	if err != nil {
		return err
	}

	q := reward
	if !done {
		nextValues, err := b.target.predict(b.features(next))
		if err != nil {
			return err
		}
		q += b.Discount * maxValue([4]float64(nextValues))
	}
	target[action] = q

	if err := b.online.train(in, target); err != nil {
		return err
	}
	b.target.blend(b.online, b.Tau)
	return nil
}

// features encodes a state as the network input row
func (b *DQNBrain) features(s State) []float64 {
	f := make([]float64, 0, inputFeatures)
	f = append(f, float64(s.RelativeFoodDir[0]), float64(s.RelativeFoodDir[1]))
	f = append(f, float64(s.FoodDistance)/float64(b.grid.Width+b.grid.Height))
	for _, danger := range s.DangerDirs {
		if danger {
			f = append(f, 1)
		} else {
			f = append(f, 0)
		}
	}
	return f
}
