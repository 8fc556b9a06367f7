package main

import (
	"syscall/js"
)

type consoleCall struct {
	line            string
	resolve, reject js.Value
}

// exposeConsole registers a global function taking a console command line
// and returning a Promise of its output.
func exposeConsole(name string, ch chan<- consoleCall) {
	js.Global().Set(name,
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			if len(args) != 1 {
				return js.Global().Get("Promise").Call("reject", errorToJS(errArgumentNumber))
			}
			line := args[0].String()
			return js.Global().Get("Promise").New(
				js.FuncOf(func(this js.Value, p []js.Value) interface{} {
					resolve, reject := p[0], p[1]
					go func() {
						ch <- consoleCall{line: line, resolve: resolve, reject: reject}
					}()
					return nil
				}),
			)
		}),
	)
}

func (c *console) call(cc consoleCall) {
	res, err := c.Run(cc.line)
	if err != nil {
		logWarn("console %q: %v", cc.line, err)
		cc.reject.Invoke(errorToJS(err))
		return
	}
	cc.resolve.Invoke(res)
}
