package model

import (
	"context"

	"github.com/a1s/w1s/internal/model1"
)

// TableModel defines the interface for a table data model that fetches data.
type TableModel interface {
	// Header returns the table header.
	Header() model1.Header

	// RowCount returns the number of visible rows.
	RowCount() int

	// Peek returns the current page.
	Peek() *model1.TableData

	// Watch loads data in the background until stopped.
	Watch(context.Context) error

	// Refresh fetches data from the source immediately.
	Refresh(context.Context) error

	// Stop cancels any pending load.
	Stop()

	// AddListener registers a table listener.
	AddListener(TableListener)

	// RemoveListener unregisters a table listener.
	RemoveListener(TableListener)
}

// TableListener represents a table model listener.
type TableListener interface {
	// TableNoData notifies listener no data was found.
	TableNoData(*model1.TableData)

	// TableDataChanged notifies the model data changed.
	TableDataChanged(*model1.TableData)

	// TableLoadFailed notifies the load failed.
	TableLoadFailed(error)
}

// ChartListener represents a chart model listener.
type ChartListener interface {
	// ChartDataChanged notifies new tallies along with the number of skipped records.
	ChartDataChanged(model1.Tallies, int)

	// ChartLoadFailed notifies the load failed.
	ChartLoadFailed(error)
}
