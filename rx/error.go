package rx

// Named syntax-error details, mirroring the teacher's synErrXxx sentinel
// messages but kept as plain strings here since verr.NewSyntaxError takes
// the detail directly.
const (
	synErrUnclosedParen   = "unclosed parenthesis"
	synErrDanglingParen   = "close parenthesis with no matching open"
	synErrExpectedOperand = "expected an operand"
)
