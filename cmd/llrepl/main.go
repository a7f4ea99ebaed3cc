package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/topdown"
	"github.com/npillmayer/topdown/ll"
	"github.com/npillmayer/topdown/ll/predict"
	"github.com/npillmayer/topdown/straightline"
)

// main() starts an interactive CLI, where users may enter straight-line
// programs. Each program is parsed and the parser's actions are displayed,
// including error recovery.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	sets := flag.Bool("sets", false, "Print FIRST- and FOLLOW-sets")
	table := flag.Bool("table", false, "Print the LL(1) parse table")
	htmlFile := flag.String("html", "", "Export the parse table as HTML to file")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to LLREPL")
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up grammar and parse table
	lang, err := straightline.New()
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel)) // now set the user supplied level
	lang.Grammar.Dump()                                             // only visible in debug mode
	intp := &Intp{lang: lang}
	if *sets {
		intp.printSets()
	}
	if *table {
		intp.printTable()
	}
	if *htmlFile != "" {
		if err := exportHTML(lang.Table, *htmlFile); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(3)
		}
		pterm.Info.Println(fmt.Sprintf("Parse table written to %s", *htmlFile))
	}
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" {
		if !intp.Parse(input) {
			os.Exit(1)
		}
		return
	}
	//
	// set up REPL
	repl, err := readline.New("llrepl> ")
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	lang *straightline.Language
	repl *readline.Instance
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if quit := intp.Execute(line); quit {
				break
			}
			continue
		}
		intp.Parse(line)
	}
	println("Good bye!")
}

// Execute runs a REPL command. It returns true if the user wants to quit.
func (intp *Intp) Execute(cmd string) bool {
	switch cmd {
	case ":sets":
		intp.printSets()
	case ":table":
		intp.printTable()
	case ":rules":
		for _, r := range intp.lang.Grammar.Rules() {
			pterm.Printf("%3d: %s\n", r.Serial, r)
		}
	case ":quit", ":q":
		return true
	default:
		pterm.Error.Println(fmt.Sprintf("unknown command %s", cmd))
	}
	return false
}

// Parse parses a program and displays the trace. It returns true if the
// program has been accepted.
func (intp *Intp) Parse(input string) bool {
	listener := func(ev predict.Event) {
		printEvent(ev, remaining(input, ev.Token))
	}
	result, err := intp.lang.Parse(input, predict.WithListener(listener))
	if result == nil {
		pterm.Error.Println(err.Error())
		return false
	}
	for _, e := range result.Errors {
		pterm.Error.Println(e.Error())
	}
	if err != nil {
		pterm.Error.Println(fmt.Sprintf("%q rejected with %d error(s)", input, len(result.Errors)))
		return false
	}
	pterm.Success.Println(fmt.Sprintf("%q accepted", input))
	return true
}

// printEvent displays a parser event together with the input not yet
// consumed.
func printEvent(ev predict.Event, rest string) {
	line := fmt.Sprintf("%-60s  input: %s", ev.String(), rest)
	switch ev.Kind {
	case predict.Error:
		pterm.Warning.Println(line)
	case predict.Skip, predict.Pop:
		pterm.Debug.Println(line)
	default:
		pterm.Println(line)
	}
}

// remaining returns the input starting at the lookahead token.
func remaining(input string, tok topdown.Token) string {
	if tok == nil {
		return input
	}
	from := tok.Span().From()
	if from >= uint64(len(input)) {
		return ""
	}
	return input[from:]
}

func (intp *Intp) printSets() {
	pterm.DefaultTable.WithHasHeader().WithData(setsData(intp.lang.Grammar)).Render()
}

func (intp *Intp) printTable() {
	pterm.DefaultTable.WithHasHeader().WithData(tableData(intp.lang.Table)).Render()
}

// setsData lists FIRST and FOLLOW for every non-terminal.
func setsData(g *ll.Grammar) pterm.TableData {
	data := pterm.TableData{{"", "FIRST", "FOLLOW"}}
	g.EachNonTerminal(func(A ll.Symbol) {
		data = append(data, []string{A.Name, g.First(A.Name).String(), g.Follow(A.Name).String()})
	})
	return data
}

// tableData has a row for every non-terminal and a column for every terminal.
func tableData(t *ll.ParseTable) pterm.TableData {
	g := t.Grammar()
	header := []string{""}
	g.EachTerminal(func(a ll.Symbol) {
		header = append(header, a.Name)
	})
	data := pterm.TableData{header}
	g.EachNonTerminal(func(A ll.Symbol) {
		row := []string{A.Name}
		g.EachTerminal(func(a ll.Symbol) {
			switch v := t.Entry(A.Name, a.Name); v {
			case ll.ErrorAction:
				row = append(row, "")
			case ll.SyncAction:
				row = append(row, "sync")
			default:
				row = append(row, fmt.Sprintf("%d", v))
			}
		})
		data = append(data, row)
	})
	return data
}

func exportHTML(t *ll.ParseTable, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot export parse table: %w", err)
	}
	defer f.Close()
	return ll.TableAsHTML(t, f)
}
