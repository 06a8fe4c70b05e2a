package problemgen

// ArithmeticMode selects the operators of an arithmetic drill.
type ArithmeticMode string

const (
	ModeAdd ArithmeticMode = "add"
	ModeSub ArithmeticMode = "sub"
	ModeMix ArithmeticMode = "mix"
)

// MultiplicationMode selects the operators of a multiplication drill.
type MultiplicationMode string

const (
	ModeMul    MultiplicationMode = "mul"
	ModeDiv    MultiplicationMode = "div"
	ModeMulMix MultiplicationMode = "mix"
)

// ArithmeticSettings configures the addition/subtraction drill.
type ArithmeticSettings struct {
	Mode  ArithmeticMode `yaml:"mode" validate:"required,oneof=add sub mix"`
	Count int            `yaml:"count" validate:"min=1,max=100"`
	// Max bounds sums and minuends.
	Max int `yaml:"max" validate:"min=1,max=1000"`
}

// MultiplicationSettings configures the multiplication/division drill.
type MultiplicationSettings struct {
	Mode  MultiplicationMode `yaml:"mode" validate:"required,oneof=mul div mix"`
	Count int                `yaml:"count" validate:"min=1,max=100"`
	// Max bounds the product (and so the dividend).
	Max int `yaml:"max" validate:"min=1,max=100"`
}

// PyramidSettings configures the number pyramid drill.
type PyramidSettings struct {
	Count int `yaml:"count" validate:"min=1,max=20"`
	// Max bounds the apex; values below 8 are raised to 8.
	Max int `yaml:"max" validate:"min=1,max=500"`
}

// ClockSettings configures the clock reading drill.
type ClockSettings struct {
	Count int `yaml:"count" validate:"min=1,max=50"`
}

// ComparisonSettings configures the number comparison drill.
type ComparisonSettings struct {
	Count int `yaml:"count" validate:"min=1,max=100"`
	Max   int `yaml:"max" validate:"min=0,max=100"`
}

// DecompositionSettings configures the number decomposition drill.
type DecompositionSettings struct {
	Count int `yaml:"count" validate:"min=1,max=100"`
	Max   int `yaml:"max" validate:"min=1,max=100"`
}

// DiceSettings configures the dice sum drill.
type DiceSettings struct {
	Dice   int `yaml:"dice" validate:"oneof=2 3"`
	Throws int `yaml:"throws" validate:"oneof=3 5 6"`
}

// NumberWritingSettings configures the tens-and-units writing drill.
type NumberWritingSettings struct {
	Count int `yaml:"count" validate:"min=1,max=100"`
}

// WordProblemSettings configures the word problem drill.
type WordProblemSettings struct {
	Count int `yaml:"count" validate:"min=1,max=50"`
}

// WordLabSettings configures the spelling drill.
type WordLabSettings struct {
	Letters int `yaml:"letters" validate:"min=2,max=10"`
	Count   int `yaml:"count" validate:"min=1,max=50"`
}
