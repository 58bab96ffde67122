package versionerdomain

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

// DecodeBulkInventory lê o inventário consolidado de todos os projetos. Aceita
// um array de itens com "project" (ou "projectKey") ou um objeto projeto -> módulos,
// onde módulos é um array de itens ou um objeto nome -> versão.
// Respostas que não são JSON resultam em lista vazia; JSON inválido é erro.
func DecodeBulkInventory(contentType string, body []byte) ([]domain.ProjectVersionRecord, error) {
	records := []domain.ProjectVersionRecord{}

	if !isJSON(contentType) {
		return records, nil
	}

	if !jsoniter.ConfigCompatibleWithStandardLibrary.Valid(body) {
		return nil, ErrMalformedInventory
	}

	iter := jsoniter.ConfigCompatibleWithStandardLibrary.BorrowIterator(body)
	defer jsoniter.ConfigCompatibleWithStandardLibrary.ReturnIterator(iter)

	switch iter.WhatIsNext() {
	case jsoniter.ArrayValue:
		for _, item := range readArray(iter) {
			object, _ := item.(map[string]any)
			records = append(records, domain.ProjectVersionRecord{
				Project:       firstPresent(object, "", "project", "projectKey"),
				VersionRecord: itemToRecord(item),
			})
		}
	case jsoniter.ObjectValue:
		iter.ReadObjectCB(func(it *jsoniter.Iterator, project string) bool {
			var inventory Inventory
			switch it.WhatIsNext() {
			case jsoniter.ArrayValue:
				inventory = Inventory{Kind: InventoryJSONArray, Items: readArray(it)}
			case jsoniter.ObjectValue:
				inventory = Inventory{Kind: InventoryJSONObject, Fields: readObject(it)}
			default:
				it.Skip()
			}

			for _, record := range inventory.Records() {
				records = append(records, domain.ProjectVersionRecord{Project: project, VersionRecord: record})
			}
			return it.Error == nil
		})
	}

	if iter.Error != nil {
		return nil, errors.Wrap(ErrMalformedInventory, iter.Error.Error())
	}

	return records, nil
}
