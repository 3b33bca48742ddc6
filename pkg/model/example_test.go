package model_test

import (
	"fmt"

	"github.com/matzehuels/pumlgen/pkg/model"
)

func ExampleBuild() {
	pkg := model.Build("shapes", []model.Class{
		{Module: "circle", Name: "Circle", Bases: []string{"Shape"}},
		{Module: "base", Name: "Shape", Methods: []string{"area"}},
	})

	for _, module := range pkg.Modules() {
		for _, c := range pkg.ByModule[module] {
			fmt.Println(c.FQName(), "as", c.Alias())
		}
	}
	for _, e := range pkg.Edges() {
		fmt.Println(e.From, "--|>", e.To)
	}
	// Output:
	// base.Shape as base_Shape
	// circle.Circle as circle_Circle
	// circle_Circle --|> base_Shape
}
