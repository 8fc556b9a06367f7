package main

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

type console struct {
	rot *rotation
}

var errArgumentNumber = errors.New("invalid number of arguments")
var errInvalidCommand = errors.New("invalid command")

func deg(rad float64) float32 {
	return float32(rad * 180 / math.Pi)
}

func rad(deg float32) float64 {
	return float64(deg) * math.Pi / 180
}

func boolToFloat(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

var consoleCommands = map[string]func(rot *rotation, args []float32) ([][]float32, error){
	"angles": func(rot *rotation, args []float32) ([][]float32, error) {
		switch len(args) {
		case 0:
		case 3:
			rot.setAngles([3]float64{rad(args[0]), rad(args[1]), rad(args[2])})
		default:
			return nil, errArgumentNumber
		}
		a := rot.angles()
		return [][]float32{{deg(a[0]), deg(a[1]), deg(a[2])}}, nil
	},
	"step": func(rot *rotation, args []float32) ([][]float32, error) {
		switch len(args) {
		case 0:
		case 1:
			if args[0] <= 0 {
				return nil, errors.New("step must be positive")
			}
			rot.step = rad(args[0])
		default:
			return nil, errArgumentNumber
		}
		return [][]float32{{deg(rot.step)}}, nil
	},
	"animate": func(rot *rotation, args []float32) ([][]float32, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		rot.toggleAnimation()
		return [][]float32{{boolToFloat(rot.animating)}}, nil
	},
	"reset": func(rot *rotation, args []float32) ([][]float32, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		rot.reset()
		return nil, nil
	},
	"model": func(rot *rotation, args []float32) ([][]float32, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		m := rot.model()
		// Printed row by row.
		res := make([][]float32, 4)
		for i := range res {
			res[i] = []float32{m[i], m[4+i], m[8+i], m[12+i]}
		}
		return res, nil
	},
}

func (c *console) Run(line string) (string, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return "", nil
	}
	fn, ok := consoleCommands[args[0]]
	if !ok {
		return "", errInvalidCommand
	}
	var argsFloat []float32
	for i := 1; i < len(args); i++ {
		f, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return "", err
		}
		argsFloat = append(argsFloat, float32(f))
	}
	res, err := fn(c.rot, argsFloat)
	if err != nil {
		return "", err
	}
	var resStr []string
	for _, vv := range res {
		var resLine []string
		for _, v := range vv {
			resLine = append(resLine, formatFloat(v))
		}
		resStr = append(resStr, strings.Join(resLine, " "))
	}
	return strings.Join(resStr, "\n"), nil
}

// formatFloat prints v with three decimals, without the sign of values
// that round to zero.
func formatFloat(v float32) string {
	if math.Abs(float64(v)) < 0.0005 {
		v = 0
	}
	return strconv.FormatFloat(float64(v), 'f', 3, 32)
}
