//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"textfreq/config"
	"textfreq/internal/adapter/analyzer"
	"textfreq/internal/adapter/memstore"
	"textfreq/internal/usecase"
)

var (
	cfg       *config.Config
	tokenizer *analyzer.Tokenizer
	az        *usecase.AnalyzeUseCase
	docs      *usecase.DocumentUseCase
)

func init() {
	cfg = config.DefaultConfig()
	tokenizer = analyzer.NewTokenizer(nil)
	az = usecase.NewAnalyzeUseCase(tokenizer, cfg.Analysis.TopK)
	docs = newDocuments()
}

func newDocuments() *usecase.DocumentUseCase {
	return usecase.NewDocumentUseCase(memstore.NewMemoryStore(), az, cfg, nil)
}

func main() {
	c := make(chan struct{})

	js.Global().Set("tfUpload", js.FuncOf(uploadDocument))
	js.Global().Set("tfAnalyze", js.FuncOf(analyzeDocument))
	js.Global().Set("tfAnalyzeText", js.FuncOf(analyzeText))
	js.Global().Set("tfList", js.FuncOf(listDocuments))
	js.Global().Set("tfClear", js.FuncOf(clearDocuments))

	<-c
}

func uploadDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return makeError("usage: tfUpload(filename, content)")
	}

	doc, err := docs.Upload(args[0].String(), []byte(args[1].String()))
	if err != nil {
		return makeError("upload failed: " + err.Error())
	}
	return makeResult(doc)
}

// ngramArg reads an optional n-gram size argument.
func ngramArg(args []js.Value, i int) int {
	if len(args) > i && args[i].Type() == js.TypeNumber {
		return args[i].Int()
	}
	return cfg.Analysis.DefaultNGram
}

func analyzeDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: tfAnalyze(id, [n])")
	}

	doc, result, err := docs.Analyze(args[0].String(), ngramArg(args, 1))
	if err != nil {
		return makeError("analysis failed: " + err.Error())
	}
	return makeResult(map[string]interface{}{
		"document": doc,
		"result":   result,
	})
}

func analyzeText(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: tfAnalyzeText(text, [n])")
	}

	text := args[0].String()
	if int64(len(text)) > cfg.Analysis.MaxInputBytes {
		return makeError("text exceeds the size limit")
	}
	return makeResult(az.Analyze(text, cfg.ClampNGram(ngramArg(args, 1))))
}

func listDocuments(this js.Value, args []js.Value) interface{} {
	list, err := docs.List()
	if err != nil {
		return makeError("list failed: " + err.Error())
	}
	return makeResult(map[string]interface{}{
		"documents":   list,
		"stopwordSet": tokenizer.StopwordVersion(),
	})
}

func clearDocuments(this js.Value, args []js.Value) interface{} {
	docs = newDocuments()
	return makeResult(map[string]interface{}{
		"success": true,
	})
}

func makeError(msg string) interface{} {
	result, _ := json.Marshal(map[string]interface{}{
		"error": msg,
	})
	return string(result)
}

func makeResult(data interface{}) interface{} {
	result, _ := json.Marshal(data)
	return string(result)
}
