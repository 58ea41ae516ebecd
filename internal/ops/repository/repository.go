package repository

import "gorm.io/gorm"

// Repositories ops context storage set
type Repositories struct {
	Plant      *PlantRepository
	Stock      *StockRepository
	Supplier   *SupplierRepository
	OrderStock *OrderStockRepository
	Shipment   *ShipmentRepository
	Task       *TaskRepository
	Reading    *ReadingRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Plant:      NewPlantRepository(db),
		Stock:      NewStockRepository(db),
		Supplier:   NewSupplierRepository(db),
		OrderStock: NewOrderStockRepository(db),
		Shipment:   NewShipmentRepository(db),
		Task:       NewTaskRepository(db),
		Reading:    NewReadingRepository(db),
	}
}
