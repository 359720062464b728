package entity

// IdentityClaim atributos verificados por el proveedor de identidad externo
// para la petición actual. Email es autoritativo una vez verificada la firma
// del ID token; el backend no prueba la propiedad del email por su cuenta.
type IdentityClaim struct {
	Email      string
	Name       string
	PictureURL string
}
