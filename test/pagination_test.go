package main

import (
	"testing"

	"shoplink/utils"
)

func TestCreatePagination(t *testing.T) {
	p := utils.CreatePagination(45, 2, 10)
	if p.TotalItems != 45 || p.TotalPages != 5 || p.CurrentPage != 2 || p.PageSize != 10 {
		t.Fatalf("unexpected pagination: %+v", p)
	}
}

func TestCreatePaginationDefaults(t *testing.T) {
	p := utils.CreatePagination(5, 0, 0)
	if p.CurrentPage != 1 || p.PageSize != 10 || p.TotalPages != 1 {
		t.Fatalf("unexpected pagination defaults: %+v", p)
	}
}

func TestCreatePaginationEmpty(t *testing.T) {
	p := utils.CreatePagination(0, 1, 10)
	if p.TotalPages != 0 || p.TotalItems != 0 {
		t.Fatalf("unexpected pagination for empty set: %+v", p)
	}
}
