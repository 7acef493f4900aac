package dto

// DatosTarjeta solo se exige cuando el método es "tarjeta". La "confirmación"
// es una simulación del lado del cliente: los datos no se persisten.
type DatosTarjeta struct {
	Numero          string `json:"numero"`
	CodigoSeguridad string `json:"codigo_seguridad"`
}

// CheckoutRequest formulario completo de la página de pago.
type CheckoutRequest struct {
	MetodoPago string        `json:"metodo_pago"` // efectivo | tarjeta | qr
	Tarjeta    *DatosTarjeta `json:"tarjeta,omitempty"`

	// Jerarquía geográfica: los tres primeros son obligatorios, zona opcional.
	IDDepartamento int64  `json:"id_departamento"`
	IDMunicipio    int64  `json:"id_municipio"`
	IDLocalidad    int64  `json:"id_localidad"`
	IDZona         *int64 `json:"id_zona,omitempty"`

	CalleAvenida        string `json:"calle_avenida"`
	NumeroCasaEdificio  string `json:"numero_casa_edificio,omitempty"`
	ReferenciaAdicional string `json:"referencia_adicional"`

	// Datos de contacto precargados del perfil pero revalidados en el submit.
	Celular string `json:"celular"`
	CI      string `json:"ci"`
}

// CheckoutResponse resultado de una compra completada.
type CheckoutResponse struct {
	IDOrden     int64  `json:"id_orden"`
	IDDireccion int64  `json:"id_direccion"`
	Total       string `json:"total"`
	MetodoPago  string `json:"metodo_pago"`
	Estado      string `json:"estado"`
	FacturaPDF  []byte `json:"factura_pdf,omitempty"` // bytes del documento descargable
}
