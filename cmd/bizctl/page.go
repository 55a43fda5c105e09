package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"bizdesk_backend/internal/viewstate"
	"bizdesk_backend/pkg/apiclient"
)

var (
	errValidation         = errors.New("validation failed")
	errDeleteNotConfirmed = errors.New("refusing to delete without --yes")
)

// mountPage loads page and fails when the fetch failed. Server-side field
// errors on submit are reported per field like local ones.
func mountPage[T viewstate.Record](ctx context.Context, page *viewstate.Controller[T]) (viewstate.State[T], error) {
	page.MapSourceErrors(apiclient.AsFieldErrors)
	page.Mount(ctx)
	st := page.State()
	if st.Notice != nil && st.Notice.Level == viewstate.NoticeError {
		page.Unmount()
		return st, errors.New(st.Notice.Message)
	}
	return st, nil
}

// report prints the outcome of a submit or delete and turns failures into errors.
func report[T viewstate.Record](out io.Writer, st viewstate.State[T]) error {
	if len(st.FieldErrors) > 0 {
		keys := make([]string, 0, len(st.FieldErrors))
		for k := range st.FieldErrors {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(out, "  %s: %s\n", k, st.FieldErrors[k])
		}
		return errValidation
	}
	if st.Notice == nil {
		return nil
	}
	if st.Notice.Level == viewstate.NoticeError {
		return errors.New(st.Notice.Message)
	}
	fmt.Fprintln(out, st.Notice.Message)
	return nil
}

func createRecord[T viewstate.Record](ctx context.Context, out io.Writer, page *viewstate.Controller[T], draft T) error {
	if _, err := mountPage(ctx, page); err != nil {
		return err
	}
	defer page.Unmount()

	page.OpenCreate()
	if err := page.Submit(draft); err != nil {
		return err
	}
	return report(out, page.State())
}

func editRecord[T viewstate.Record](ctx context.Context, out io.Writer, page *viewstate.Controller[T], id string, edit func(*T)) error {
	st, err := mountPage(ctx, page)
	if err != nil {
		return err
	}
	defer page.Unmount()

	record, ok := st.Find(id)
	if !ok {
		return fmt.Errorf("no record with id %s", id)
	}
	page.OpenEdit(record)
	draft := record
	edit(&draft)
	if err := page.Submit(draft); err != nil {
		return err
	}
	return report(out, page.State())
}

func deleteRecord[T viewstate.Record](ctx context.Context, out io.Writer, page *viewstate.Controller[T], id string, confirmed bool) error {
	st, err := mountPage(ctx, page)
	if err != nil {
		return err
	}
	defer page.Unmount()

	record, ok := st.Find(id)
	if !ok {
		return fmt.Errorf("no record with id %s", id)
	}
	page.RequestDelete(record)
	if !confirmed {
		page.Cancel()
		return errDeleteNotConfirmed
	}
	if err := page.ConfirmDelete(); err != nil {
		return err
	}
	return report(out, page.State())
}
