package repository

// defaultParts is the built-in catalog, in lookup order.
var defaultParts = []Part{
	{PartNumber: "3A004", NomenClature: "Pressure Reducer", NSN: "4820-00-991-0785"},
	{PartNumber: "PD60", NomenClature: "Plug", NSN: "5340-00-682-1857"},
	{PartNumber: "52-27-17", NomenClature: "Aircraft Airframe Structural Components (FSC 1650)", NSN: "1650-00-566-3329"},
	{PartNumber: "52-27-20", NomenClature: "LOCK NUT", NSN: ""},
	{PartNumber: "52-27-18", NomenClature: "Coil, Flat, Leaf, and Wire Springs (FSC 5360)", NSN: ""},
	{PartNumber: "92-07-11", NomenClature: "SPRING", NSN: "5360-01-377-7249"},
	{PartNumber: "52-27-19", NomenClature: "RETAINER", NSN: "4820-00-566-3331"},
	{PartNumber: "MS28774-116", NomenClature: "PACKING RETAINER", NSN: "5330-00-582-2111"},
	{PartNumber: "M83461/1-116", NomenClature: "PREFORMED PACKING", NSN: "5330-00-291-3284"},
	{PartNumber: "M83461/1-013", NomenClature: "PACKING, PREFORMED", NSN: "5331-01-088-6108"},
	{PartNumber: "71-07-17", NomenClature: "DASHPOT", NSN: "1650-00-859-9720"},
	{PartNumber: "71-07-12", NomenClature: "PLUNGER", NSN: "5340-01-110-8287"},
	{PartNumber: "52 27-23", NomenClature: "BEARING, BALL", NSN: "3110-01-246-2436"},
	{PartNumber: "71-07-16-2", NomenClature: "FITTING", NSN: "4820-00-013-3541"},
	{PartNumber: "MS28774-006", NomenClature: "RETAINER,PACKING", NSN: "5330-00-057-5709"},
	{PartNumber: "M83461/1-006", NomenClature: "O-RING", NSN: "5331-00-595-6325"},
	{PartNumber: "MS28774-012", NomenClature: "PACKING RETAINER", NSN: "5330-00-543-7090"},
	{PartNumber: "M83461/1-012", NomenClature: "O-RING", NSN: "5331-01-335-8010"},
	{PartNumber: "3A004-102", NomenClature: "Signs, Advertising Displays, and Identification Plates (FSC 9905)", NSN: ""},
	{PartNumber: "3A016-11", NomenClature: "VALVE, REGULATING, FLUID PRESSURE", NSN: "4820-00-983-3598"},
	{PartNumber: "AN535-00-2", NomenClature: "SCREW, DRIVE", NSN: "5305-00-253-5603"},
	{PartNumber: "3A004-101", NomenClature: "VALVE BODY", NSN: "01-562-9438"},
	{PartNumber: "3A016 10", NomenClature: "VALVE, REGULATING, FLUID PRESSURE", NSN: "4820-00-983-3598"},
	{PartNumber: "9776461-10", NomenClature: "KIT", NSN: "4820-00-870-4223"},
	{PartNumber: "9776508-10", NomenClature: "KIT", NSN: "4820-00-065-3578"},
}

// DefaultParts returns a copy of the built-in catalog.
func DefaultParts() []Part {
	return cloneParts(defaultParts)
}
