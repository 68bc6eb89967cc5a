package store

const (
	createUser = `INSERT INTO users (username, email, password_hash, role)
    VALUES ($1, $2, $3, $4)
    RETURNING id, username, email, password_hash, role, created_at;`

	findUserByEmail = `SELECT id, username, email, password_hash, role, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, username, email, password_hash, role, created_at
    FROM users
    WHERE id = $1;`

	emailExists = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1);`

	usernameExists = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1);`

	createRegion = `INSERT INTO regions (name, description, coordinates)
    VALUES ($1, $2, $3)
    RETURNING id, name, description, coordinates, created_at;`

	getRegionByID = `SELECT id, name, description, coordinates, created_at
    FROM regions
    WHERE id = $1;`

	countRegions = `SELECT COUNT(*) FROM regions;`

	listRegions = `SELECT r.id, r.name, r.description, r.coordinates, COUNT(ar.animal_id)
    FROM regions r
    LEFT JOIN animal_region ar ON ar.region_id = r.id
    GROUP BY r.id
    ORDER BY r.id
    LIMIT $1 OFFSET $2;`

	deleteRegion = `DELETE FROM regions WHERE id = $1;`

	createAnimal = `INSERT INTO animals (name, scientific_name, description, risk_level, image_url)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, name, scientific_name, description, risk_level, image_url, created_at;`

	getAnimalByID = `SELECT id, name, scientific_name, description, risk_level, image_url, created_at
    FROM animals
    WHERE id = $1;`

	deleteAnimal = `DELETE FROM animals WHERE id = $1;`

	// linkAnimalRegions attaches the animal to every region whose ID is in
	// the given list; unknown region IDs are silently ignored so a caller
	// may pass IDs that no longer exist.
	linkAnimalRegions = `INSERT INTO animal_region (animal_id, region_id)
    SELECT $1, id FROM regions WHERE id = ANY($2);`

	unlinkAnimalRegions = `DELETE FROM animal_region WHERE animal_id = $1;`
)
