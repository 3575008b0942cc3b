// modules.go — the capability-module seam and the standard stub modules.
//
// A capability module is the only boundary the core depends on: a name plus a
// single Invoke operation, called synchronously from call evaluation. Modules
// own all real side effects; the standard set shipped here returns
// descriptive strings instead of performing I/O, so the core stays pure and
// deployments can swap in real implementations per module name.

package azalea

import "fmt"

// Module is an external, side-effecting handler reachable by name from call
// nodes. Invoke must always return a Value (never panic across this boundary)
// and must not retain references to args beyond the call.
type Module interface {
	Invoke(method string, args []Value) Value
}

// NewRuntime returns an interpreter with the standard stub modules
// registered: net, file, vm, serve, view, and play.
func NewRuntime() *Interpreter {
	ip := NewInterpreter()
	ip.RegisterModule("net", netModule{})
	ip.RegisterModule("file", fileModule{})
	ip.RegisterModule("vm", vmModule{})
	ip.RegisterModule("serve", serveModule{})
	ip.RegisterModule("view", viewModule{})
	ip.RegisterModule("play", playModule{})
	return ip
}

// ----- net -----

type netModule struct{}

func (netModule) Invoke(method string, args []Value) Value {
	switch method {
	case "get":
		if len(args) > 0 {
			return Text("GET " + args[0].String())
		}
	case "post":
		if len(args) >= 2 {
			return Text("POST " + args[0].String())
		}
	}
	return Void
}

// ----- file -----

type fileModule struct{}

func (fileModule) Invoke(method string, args []Value) Value {
	switch method {
	case "read":
		if len(args) > 0 {
			return Text("READ " + args[0].String())
		}
	case "write":
		if len(args) >= 2 {
			return Text("WRITE " + args[0].String())
		}
	}
	return Bool(false)
}

// ----- vm -----

type vmModule struct{}

func (vmModule) Invoke(method string, args []Value) Value {
	if method == "make" {
		return Text("VM created")
	}
	return Void
}

// ----- serve -----

type serveModule struct{}

func (serveModule) Invoke(method string, args []Value) Value {
	switch method {
	case "on", "start":
		if len(args) > 0 {
			return Text(fmt.Sprintf("Server on port %d", int(args[0].AsNumber())))
		}
	case "get", "route":
		if len(args) >= 2 {
			return Text("Route GET " + args[0].String())
		}
	case "post":
		if len(args) >= 2 {
			return Text("Route POST " + args[0].String())
		}
	case "put":
		if len(args) >= 2 {
			return Text("Route PUT " + args[0].String())
		}
	case "delete", "del":
		if len(args) >= 2 {
			return Text("Route DELETE " + args[0].String())
		}
	case "static", "files":
		if len(args) > 0 {
			return Text("Serving static files from " + args[0].String())
		}
	case "json", "send":
		if len(args) > 0 {
			return Text("JSON response")
		}
	}
	return Void
}

// ----- view -----

type viewModule struct{}

func (viewModule) Invoke(method string, args []Value) Value {
	switch method {
	case "pane", "div", "box", "input", "field":
		return MapVal(pairProps(args, 0))
	case "button", "btn":
		props := pairProps(args, 1)
		if len(args) > 0 {
			props["text"] = args[0]
		}
		return MapVal(props)
	case "text", "label":
		if len(args) > 0 {
			return MapVal(map[string]Value{"content": args[0]})
		}
	case "image", "img":
		if len(args) > 0 {
			return MapVal(map[string]Value{"src": args[0]})
		}
	case "list", "ul":
		props := map[string]Value{}
		if len(args) > 0 && args[0].Tag == VTList {
			props["items"] = args[0]
		}
		return MapVal(props)
	case "show", "render":
		if len(args) > 0 {
			return Text("Rendered: " + args[0].String())
		}
	case "style", "css":
		return MapVal(pairProps(args, 0))
	}
	return Void
}

// pairProps folds args[from:] into a property map as key/value pairs; a
// trailing key with no value is dropped.
func pairProps(args []Value, from int) map[string]Value {
	props := make(map[string]Value)
	for i := from; i+1 < len(args); i += 2 {
		props[args[i].String()] = args[i+1]
	}
	return props
}

// ----- play -----

type playModule struct{}

func (playModule) Invoke(method string, args []Value) Value {
	switch method {
	case "game", "sprite", "render":
		return Text("Play: " + method)
	}
	return Void
}
