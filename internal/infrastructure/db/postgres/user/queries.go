package user

const userColumns = `id, uuid, nombres, apellidos, dni, codigo, correo, telefono, direccion, calle, ciudad, estado, rol, foto, password_hash, estatus, created_at, updated_at`

const (
	SelectUsers = `
		SELECT ` + userColumns + `
		FROM usuarios
		ORDER BY id
		LIMIT 50 OFFSET ( ($1 - 1) * 50 )
	`
	SelectUserByID = `
		SELECT ` + userColumns + `
		FROM usuarios
		WHERE uuid = $1
	`
	SelectUserByEmail = `
		SELECT ` + userColumns + `
		FROM usuarios
		WHERE correo = $1
	`
	SelectUserByCode = `
		SELECT ` + userColumns + `
		FROM usuarios
		WHERE codigo = $1
	`
	SelectUserByNationalID = `
		SELECT ` + userColumns + `
		FROM usuarios
		WHERE dni = $1
	`
	SelectUsersByRole = `
		SELECT ` + userColumns + `
		FROM usuarios
		WHERE rol = $1
		ORDER BY id
	`
	SelectUsersByCity = `
		SELECT ` + userColumns + `
		FROM usuarios
		WHERE ciudad = $1
		ORDER BY id
	`
	InsertUser = `
		INSERT INTO usuarios (nombres, apellidos, dni, codigo, correo, telefono, direccion, calle, ciudad, estado, rol, foto, password_hash, estatus)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + userColumns + `
	`
	UpdateUserByUUID = `
		UPDATE usuarios
		SET nombres = $1,
		    apellidos = $2,
		    telefono = $3,
		    direccion = $4,
		    calle = $5,
		    ciudad = $6,
		    estado = $7,
		    foto = $8,
		    updated_at = now()
		WHERE uuid = $9
		RETURNING ` + userColumns + `
	`
	UpdatePasswordByUUID = `
		UPDATE usuarios
		SET password_hash = $1,
		    updated_at = now()
		WHERE uuid = $2
	`
	UpdatePhotoByUUID = `
		UPDATE usuarios
		SET foto = $1,
		    updated_at = now()
		WHERE uuid = $2
		RETURNING ` + userColumns + `
	`
	DeleteUserByUUID = `
		DELETE FROM usuarios
		WHERE uuid = $1
		RETURNING ` + userColumns + `
	`
)
