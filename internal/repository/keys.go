package repository

// Storage namespaces. Each collection is one JSON document per user under
// "<namespace>:<userId>". The _v1 suffix versions the document shape.
const (
	nsProductos   = "productos_v1"
	nsClientes    = "clientes_v1"
	nsProveedores = "proveedores_v1"
	nsCompras     = "compras_v1"
	nsPagos       = "pagos_proveedores_v1"
	nsCajas       = "cajas_v1"
	nsVentas      = "ventas_v1"
)

func storageKey(ns, userID string) string {
	return ns + ":" + userID
}

// BucketKey builds the compound key used inside the cajas and ventas
// documents to partition by date and shift.
func BucketKey(fechaStr, turno string) string {
	return fechaStr + "|" + turno
}
