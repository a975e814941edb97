/*
Copyright 2025 Piotr Janik.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Command modelgen renders the Go types of a service model.
package main

import (
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/cogniteo/idp-sdk-go/internal/codegen"
	"github.com/cogniteo/idp-sdk-go/internal/logging"
)

var (
	app = kingpin.New("modelgen", "Generate Go types from a service model.")

	modelPath  = app.Flag("model", "Path to the service model.").Required().ExistingFile()
	outputDir  = app.Flag("output", "Directory the generated files are written to.").Default(".").String()
	pkgName    = app.Flag("package", "Name of the generated package.").Default("model").String()
	headerPath = app.Flag("header", "File prepended to every generated file.").ExistingFile()
	fixtures   = app.Flag("fixtures", "Also generate test fixtures for every shape.").Bool()
	logLevel   = app.Flag("log-level", "Log level.").Default("info").Enum("debug", "info", "warn", "error")
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	log, err := logging.New(logging.Options{Level: *logLevel})
	app.FatalIfError(err, "unable to set up logging")

	var header string
	if *headerPath != "" {
		b, err := os.ReadFile(*headerPath)
		app.FatalIfError(err, "unable to read header")
		header = string(b)
	}

	m, err := codegen.LoadModel(*modelPath)
	app.FatalIfError(err, "unable to load model")

	files, err := codegen.Render(m, codegen.Options{
		Package:  *pkgName,
		Header:   header,
		Fixtures: *fixtures,
		Logger:   log.WithName("codegen"),
	})
	app.FatalIfError(err, "unable to render model")

	app.FatalIfError(codegen.WriteFiles(*outputDir, files), "unable to write files")
	log.Info("wrote generated files", "dir", *outputDir, "files", len(files))
}
