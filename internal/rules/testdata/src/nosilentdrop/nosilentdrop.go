package nosilentdrop

import "errors"

func failing() error {
	return errors.New("boom")
}

func pair() (int, error) {
	return 1, errors.New("boom")
}

func consume() int {
	_ = failing() // want `error value dropped without handling`

	v, _ := pair() // want `error value dropped without handling`

	n := 42
	_ = n

	return v
}
