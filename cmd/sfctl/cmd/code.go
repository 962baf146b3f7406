package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	fabric "github.com/ozanturksever/go-fabric"
	"github.com/ozanturksever/go-fabric/native"
)

var codeCmd = &cobra.Command{
	Use:   "code [name|hresult]",
	Short: "Look up native error codes",
	Long: `Look up an error code by name or by HRESULT value.

Example:
  sfctl code ServiceNotFound
  sfctl code 0x80071BCD
  sfctl code --transient`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCode,
}

func init() {
	rootCmd.AddCommand(codeCmd)
	codeCmd.Flags().Bool("list", false, "list every known code")
	codeCmd.Flags().Bool("transient", false, "list the codes that are retried")
}

type codeView struct {
	Name      string `json:"name"`
	HRESULT   string `json:"hresult"`
	Transient bool   `json:"transient"`
}

func newCodeView(c fabric.ErrorCode, transient map[fabric.ErrorCode]bool) codeView {
	return codeView{
		Name:      c.String(),
		HRESULT:   fmt.Sprintf("0x%08X", uint32(c)),
		Transient: transient[c],
	}
}

func runCode(cmd *cobra.Command, args []string) error {
	transient := make(map[fabric.ErrorCode]bool)
	for _, c := range fabric.TransientCodes() {
		transient[c] = true
	}

	var codes []fabric.ErrorCode
	list, _ := cmd.Flags().GetBool("list")
	onlyTransient, _ := cmd.Flags().GetBool("transient")
	switch {
	case onlyTransient:
		codes = fabric.TransientCodes()
	case list:
		codes = fabric.ErrorCodes()
	case len(args) == 1:
		c, err := parseCode(args[0])
		if err != nil {
			return err
		}
		codes = []fabric.ErrorCode{c}
	default:
		return fmt.Errorf("a code name or HRESULT is required")
	}

	views := make([]codeView, 0, len(codes))
	for _, c := range codes {
		views = append(views, newCodeView(c, transient))
	}
	if jsonOutput() {
		return printJSON(views)
	}

	w := newTable(os.Stdout)
	fmt.Fprintln(w, "HRESULT\tNAME\tTRANSIENT")
	for _, v := range views {
		fmt.Fprintf(w, "%s\t%s\t%t\n", v.HRESULT, v.Name, v.Transient)
	}
	return w.Flush()
}

func parseCode(s string) (fabric.ErrorCode, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return fabric.CodeUnknown, fmt.Errorf("invalid HRESULT %q: %w", s, err)
		}
		c, ok := fabric.LookupErrorCode(native.HRESULT(v))
		if !ok {
			return fabric.CodeUnknown, fmt.Errorf("HRESULT %s is not a known error code", s)
		}
		return c, nil
	}
	return fabric.ParseErrorCode(s)
}
