package overload

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/eaburns/mathsig/types"
)

var traceResolve = flag.Bool("overload.trace", false, "print the cost of each case considered by Resolve")

var traceOut io.Writer = os.Stdout

// trace formats and prints only if tracing is on,
// so arguments should be cheap values with String methods.
func trace(f string, vs ...interface{}) {
	if !*traceResolve {
		return
	}
	s := fmt.Sprintf(f, vs...)
	s = strings.TrimSuffix(s, "\n")
	fmt.Fprintln(traceOut, s)
}

type typeList []types.Type

func (ts typeList) String() string { return types.ListString(ts) }

type traceReject struct {
	r    *Reject
	args []types.Type
}

func (tr traceReject) String() string { return tr.r.reason(tr.args) }
