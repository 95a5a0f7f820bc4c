package evaluate

import (
	"math"

	"github.com/jsonx-lang/jsonx/ast"
)

// Evaluate projects node onto a plain Go value: *ast.Object becomes
// map[string]any (later members overwrite earlier ones sharing a name),
// *ast.Array becomes []any, scalars become their native equivalent.
// *ast.Document evaluates its Body. A bare ast.Member or ast.Element —
// which only ever appears nested inside an Object/Array — is rejected
// with a MisplacedContainerNode error, since it has no standalone plain
// value. Any other argument that is not an AST node gets the same error.
func Evaluate(node any) (any, error) {
	switch n := node.(type) {
	case *ast.Document:
		return Evaluate(n.Body)
	case *ast.Object:
		return evaluateObject(n)
	case *ast.Array:
		return evaluateArray(n)
	case *ast.String:
		return n.Value, nil
	case *ast.Number:
		return n.Value, nil
	case *ast.Boolean:
		return n.Value, nil
	case *ast.Null:
		return nil, nil
	case *ast.Identifier:
		return n.Name, nil
	case *ast.NaN:
		return math.NaN(), nil
	case *ast.Infinity:
		if n.Sign == ast.SignNegative {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	case ast.Member, ast.Element:
		return nil, newMisplacedContainerNode()
	default:
		return nil, newMisplacedContainerNode()
	}
}

func evaluateObject(obj *ast.Object) (map[string]any, error) {
	result := make(map[string]any, len(obj.Members))
	for _, m := range obj.Members {
		key, err := memberKey(m.Name)
		if err != nil {
			return nil, err
		}
		value, err := Evaluate(m.Value)
		if err != nil {
			return nil, err
		}
		result[key] = value
	}
	return result, nil
}

// memberKey extracts a member name's string form. Names are always a
// String or, in json5, an Identifier — never another container.
func memberKey(name ast.ValueNode) (string, error) {
	switch n := name.(type) {
	case *ast.String:
		return n.Value, nil
	case *ast.Identifier:
		return n.Name, nil
	default:
		return "", newMisplacedContainerNode()
	}
}

func evaluateArray(arr *ast.Array) ([]any, error) {
	result := make([]any, len(arr.Elements))
	for i, e := range arr.Elements {
		value, err := Evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		result[i] = value
	}
	return result, nil
}
