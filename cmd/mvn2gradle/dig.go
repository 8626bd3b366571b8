package main

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/mvn2gradle/internal"
	"github.com/rios0rios0/mvn2gradle/internal/infrastructure/controllers"
)

// newContainer registers every provider once for the root command and the subcommands.
func newContainer() *dig.Container {
	container := dig.New()
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}
	return container
}

func injectAppContext(container *dig.Container) *internal.AppInternal {
	var appInternal *internal.AppInternal
	if err := container.Invoke(func(ai *internal.AppInternal) {
		appInternal = ai
	}); err != nil {
		panic(err)
	}
	return appInternal
}

func injectConvertController(container *dig.Container) *controllers.ConvertController {
	var convertController *controllers.ConvertController
	if err := container.Invoke(func(cc *controllers.ConvertController) {
		convertController = cc
	}); err != nil {
		panic(err)
	}
	return convertController
}
