package handler

import "github.com/Thamidu-Peiris/CRIPS-sub002/internal/ops/service"

// Handlers ops context endpoint set
type Handlers struct {
	Plant     *PlantHandler
	Inventory *InventoryHandler
	Shipment  *ShipmentHandler
	Transport *TransportHandler
	Task      *TaskHandler
	Reading   *ReadingHandler
}

func NewHandlers(svcPlant *service.PlantService, svcInventory *service.InventoryService, svcShipment *service.ShipmentService, svcTransport *service.TransportService, svcTask *service.TaskService, svcReading *service.ReadingService) *Handlers {
	return &Handlers{
		Plant:     NewPlantHandler(svcPlant),
		Inventory: NewInventoryHandler(svcInventory),
		Shipment:  NewShipmentHandler(svcShipment),
		Transport: NewTransportHandler(svcTransport),
		Task:      NewTaskHandler(svcTask),
		Reading:   NewReadingHandler(svcReading),
	}
}
