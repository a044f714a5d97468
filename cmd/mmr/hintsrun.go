package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/yourorg/mmrhints/pkg/hints"
	"github.com/yourorg/mmrhints/pkg/hints/testgen"
	"github.com/yourorg/mmrhints/pkg/vm"
)

// newProcessor tries the test-vector generators first and the production
// library second.
func newProcessor() *hints.ExtendedProcessor {
	p := hints.NewExtendedProcessor(testgen.Catalog(testgen.NewRand()))
	for code, fn := range hints.Library() {
		p.AddHint(code, fn)
	}
	return p
}

// loadIDs binds the operands described by a JSON object: numbers become
// one-cell locals, arrays become pointers to a fresh segment holding the
// elements, {"low", "high"} objects become two-cell structs. The
// "constants" key holds program constants.
func loadIDs(f *vm.Frame, data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("ids: invalid JSON")
	}
	var err error
	gjson.ParseBytes(data).ForEach(func(key, value gjson.Result) bool {
		err = bindID(f, key.String(), value)
		return err == nil
	})
	return err
}

func bindID(f *vm.Frame, name string, value gjson.Result) error {
	switch {
	case name == "constants":
		var err error
		value.ForEach(func(k, v gjson.Result) bool {
			c, perr := parseFelts([]string{v.String()})
			if perr != nil {
				err = fmt.Errorf("constant %s: %w", k.String(), perr)
				return false
			}
			f.SetConstant(k.String(), c[0])
			return true
		})
		return err

	case value.IsArray():
		var raw []string
		for _, v := range value.Array() {
			raw = append(raw, v.String())
		}
		vals, err := parseFelts(raw)
		if err != nil {
			return fmt.Errorf("ids.%s: %w", name, err)
		}
		base, err := f.Array(name)
		if err != nil {
			return err
		}
		cells := make([]vm.MaybeRelocatable, len(vals))
		for i, v := range vals {
			cells[i] = vm.Int(v)
		}
		_, err = f.Memory().LoadData(base, cells)
		return err

	case value.IsObject():
		vals, err := parseFelts([]string{value.Get("low").String(), value.Get("high").String()})
		if err != nil {
			return fmt.Errorf("ids.%s: %w", name, err)
		}
		addr, err := f.Local(name, 2)
		if err != nil {
			return err
		}
		_, err = f.Memory().LoadData(addr, []vm.MaybeRelocatable{vm.Int(vals[0]), vm.Int(vals[1])})
		return err

	default:
		vals, err := parseFelts([]string{value.String()})
		if err != nil {
			return fmt.Errorf("ids.%s: %w", name, err)
		}
		return f.Set(name, vm.Int(vals[0]))
	}
}

func newHintsRunCmd() *cobra.Command {
	var (
		hintFile, idsFile string
		outputs           []string
		apCells           uint64
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one hint against operands read from a JSON file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			code, err := os.ReadFile(hintFile)
			if err != nil {
				return err
			}

			f := vm.NewFrame(vm.NewMemory())
			if idsFile != "" {
				data, err := os.ReadFile(idsFile)
				if err != nil {
					return err
				}
				if err := loadIDs(f, data); err != nil {
					return err
				}
			}
			for _, name := range outputs {
				if _, err := f.Local(name, 2); err != nil {
					return err
				}
			}

			if err := newProcessor().Execute(string(code), f, hints.NewScope()); err != nil {
				return err
			}
			printFrame(cmd.OutOrStdout(), f, outputs, apCells)
			return nil
		},
	}
	cmd.Flags().StringVar(&hintFile, "hint", "", "File holding the exact hint text")
	cmd.Flags().StringVar(&idsFile, "ids", "", "JSON file describing the operands")
	cmd.Flags().StringSliceVar(&outputs, "out", nil, "Output operands to declare and print")
	cmd.Flags().Uint64Var(&apCells, "ap", 0, "Number of cells to print from ap")
	_ = cmd.MarkFlagRequired("hint")
	return cmd
}

func printFrame(w io.Writer, f *vm.Frame, outputs []string, apCells uint64) {
	show := func(label string, v vm.MaybeRelocatable, err error) {
		if err != nil {
			fmt.Fprintf(w, "%s = <unset>\n", label)
			return
		}
		fmt.Fprintf(w, "%s = %s\n", label, v)
	}
	for _, name := range outputs {
		v, err := f.Lookup(name)
		show(name, v, err)
		// second cell is only set by two-word results
		if high, herr := f.Lookup(name + ".high"); herr == nil {
			show(name+".high", high, nil)
		}
	}
	for i := uint64(0); i < apCells; i++ {
		addr := f.AP().Add(i)
		v, err := f.Get(addr)
		show(fmt.Sprintf("[ap+%d]", i), v, err)
	}
}
