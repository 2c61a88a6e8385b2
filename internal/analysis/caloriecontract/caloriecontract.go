// Package caloriecontract defines an analyzer that reports workouts
// without a calorie formula.
//
// Every struct embedding ftracker.Training must declare its own
// SpentCalories method. The compiler only catches a missing formula where
// the type is used as a ftracker.Workout, the analyzer catches it at the
// declaration.
package caloriecontract

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const (
	trainingPkg  = "ftracker"
	trainingType = "Training"
	method       = "SpentCalories"
)

var Analyzer = &analysis.Analyzer{
	Name:     "caloriecontract",
	Doc:      "reports structs embedding ftracker.Training without their own SpentCalories method",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	insp.Preorder([]ast.Node{(*ast.TypeSpec)(nil)}, func(n ast.Node) {
		spec := n.(*ast.TypeSpec)
		st, ok := spec.Type.(*ast.StructType)
		if !ok || !embedsTraining(pass, st) {
			return
		}

		obj := pass.TypesInfo.Defs[spec.Name]
		if obj == nil {
			return
		}
		named, ok := obj.Type().(*types.Named)
		if !ok || declaresMethod(named, method) {
			return
		}

		pass.Reportf(spec.Name.Pos(), "%s embeds %s but does not implement %s", spec.Name.Name, trainingType, method)
	})

	return nil, nil
}

func embedsTraining(pass *analysis.Pass, st *ast.StructType) bool {
	for _, field := range st.Fields.List {
		if len(field.Names) != 0 {
			continue
		}

		t := pass.TypesInfo.TypeOf(field.Type)
		if ptr, ok := t.(*types.Pointer); ok {
			t = ptr.Elem()
		}
		named, ok := t.(*types.Named)
		if !ok {
			continue
		}

		obj := named.Obj()
		if obj.Name() == trainingType && obj.Pkg() != nil && obj.Pkg().Name() == trainingPkg {
			return true
		}
	}
	return false
}

// declaresMethod reports whether name is declared on t itself, promoted methods do not count.
func declaresMethod(t *types.Named, name string) bool {
	for i := 0; i < t.NumMethods(); i++ {
		if t.Method(i).Name() == name {
			return true
		}
	}
	return false
}
