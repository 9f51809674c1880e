//go:build pagesim_debug

package pagesim

const debugging = true

func assert(cond bool, message string) {
	if !cond {
		panic(message)
	}
}
