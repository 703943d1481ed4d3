package rpn

// Option is an option for tokenizing and converting expressions.
type Option interface {
	option(config) config
}

type (
	strictopt struct{}
	rpowopt   struct{}
)

// config holds the settings applied by options.
type config struct {
	// strict disallows numbers with a leading or trailing decimal point.
	strict bool
	// rpow makes exponentiation right-associative.
	rpow bool
}

// StrictNumbers tells the tokenizer to reject numbers which begin or end with
// a decimal point, like ".5" and "5.".
func StrictNumbers() Option {
	return strictopt{}
}

func (strictopt) option(c config) config {
	c.strict = true
	return c
}

// RightAssocPow makes ^ group right to left, so that "2^3^2" is 2^(3^2).
// Without it, ^ is left-associative like the other operators.
func RightAssocPow() Option {
	return rpowopt{}
}

func (rpowopt) option(c config) config {
	c.rpow = true
	return c
}

func configure(opts []Option) config {
	var c config
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		c = opt.option(c)
	}
	return c
}
