package entity

// Jerarquía geográfica para direcciones: departamento → municipio → localidad → zona.

type Departamento struct {
	ID     int64
	Nombre string
}

type Municipio struct {
	ID             int64
	IDDepartamento int64
	Nombre         string
}

type Localidad struct {
	ID          int64
	IDMunicipio int64
	Nombre      string
}

// Zona subdivisión opcional de una localidad.
type Zona struct {
	ID          int64
	IDLocalidad int64
	Nombre      string
}
