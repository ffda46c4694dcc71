package util

type ErrorString string

func (this ErrorString) Error() string {
	return string(this)
}

func PanicOn(err error) {
	if err != nil {
		panic(err)
	}
}

func Max(x, y int) int {
	if x > y {
		return x
	}
	return y
}
