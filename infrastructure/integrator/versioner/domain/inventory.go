package versionerdomain

import (
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

// ErrMalformedInventory indica um corpo declarado como JSON que não pôde ser lido
var ErrMalformedInventory = errors.New("malformed versioner inventory")

// InventoryKind é o formato em que o Versioner devolveu o inventário
type InventoryKind int

const (
	InventoryEmpty InventoryKind = iota
	InventoryJSONArray
	InventoryJSONObject
	InventoryHTML
)

func (k InventoryKind) String() string {
	switch k {
	case InventoryJSONArray:
		return "json-array"
	case InventoryJSONObject:
		return "json-object"
	case InventoryHTML:
		return "html"
	}
	return "empty"
}

// Field é um par chave/valor de um objeto JSON, na ordem em que aparece no documento
type Field struct {
	Key   string
	Value any
}

// Inventory é a resposta do Versioner já classificada. Apenas o campo do Kind correspondente é preenchido.
type Inventory struct {
	Kind   InventoryKind
	Items  []any
	Fields []Field
	HTML   string
}

// DecodeInventory classifica o corpo da resposta pelo Content-Type.
// JSON escalar ou null resulta em inventário vazio; JSON inválido é erro,
// para que o chamador recorra ao cache expirado.
func DecodeInventory(contentType string, body []byte) (Inventory, error) {
	if !isJSON(contentType) {
		return Inventory{Kind: InventoryHTML, HTML: string(body)}, nil
	}

	if !jsoniter.ConfigCompatibleWithStandardLibrary.Valid(body) {
		return Inventory{}, ErrMalformedInventory
	}

	iter := jsoniter.ConfigCompatibleWithStandardLibrary.BorrowIterator(body)
	defer jsoniter.ConfigCompatibleWithStandardLibrary.ReturnIterator(iter)

	var inventory Inventory
	switch iter.WhatIsNext() {
	case jsoniter.ArrayValue:
		inventory = Inventory{Kind: InventoryJSONArray, Items: readArray(iter)}
	case jsoniter.ObjectValue:
		inventory = Inventory{Kind: InventoryJSONObject, Fields: readObject(iter)}
	default:
		inventory = Inventory{Kind: InventoryEmpty}
	}

	if iter.Error != nil {
		return Inventory{}, errors.Wrap(ErrMalformedInventory, iter.Error.Error())
	}

	return inventory, nil
}

func isJSON(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "application/json")
}

// Records converte o inventário em versões de módulos
func (i Inventory) Records() []domain.VersionRecord {
	switch i.Kind {
	case InventoryJSONArray:
		records := make([]domain.VersionRecord, 0, len(i.Items))
		for _, item := range i.Items {
			records = append(records, itemToRecord(item))
		}
		return records
	case InventoryJSONObject:
		records := make([]domain.VersionRecord, 0, len(i.Fields))
		for _, field := range i.Fields {
			records = append(records, domain.VersionRecord{
				ModuleName:  field.Key,
				Version:     scalarString(field.Value, "N/A"),
				Environment: domain.DefaultEnvironment,
			})
		}
		return records
	case InventoryHTML:
		return ParseHTML(i.HTML)
	}
	return []domain.VersionRecord{}
}

// itemToRecord aplica os valores padrão de cada campo de um item do array.
// Valores vazios, zero, false e null contam como ausentes.
func itemToRecord(item any) domain.VersionRecord {
	object, _ := item.(map[string]any)

	return domain.VersionRecord{
		ModuleName:    firstPresent(object, "Unknown", "name", "module"),
		Version:       firstPresent(object, "N/A", "version"),
		Environment:   firstPresent(object, domain.DefaultEnvironment, "env", "environment"),
		LatestVersion: firstPresent(object, "", "latestVersion", "latest"),
		LastDeployed:  firstPresent(object, "", "lastDeployed"),
	}
}

func firstPresent(object map[string]any, fallback string, keys ...string) string {
	for _, key := range keys {
		if value, ok := object[key]; ok && !isEmptyValue(value) {
			return scalarString(value, fallback)
		}
	}
	return fallback
}

func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case float64:
		return v == 0
	case bool:
		return !v
	}
	return false
}

func scalarString(value any, fallback string) string {
	switch v := value.(type) {
	case nil:
		return fallback
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	}

	encoded, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalToString(value)
	if err != nil {
		return fallback
	}
	return encoded
}

func readArray(iter *jsoniter.Iterator) []any {
	items := []any{}
	iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
		items = append(items, it.Read())
		return it.Error == nil
	})
	return items
}

func readObject(iter *jsoniter.Iterator) []Field {
	fields := []Field{}
	iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		fields = append(fields, Field{Key: key, Value: it.Read()})
		return it.Error == nil
	})
	return fields
}
