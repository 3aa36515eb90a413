package sqlrepo

const hotelColumns = "id, name, price, doingtime"

// -----------------------------------------------------------------------------
// MYSQL
// -----------------------------------------------------------------------------

const createTableMySQL = `
CREATE TABLE IF NOT EXISTS hotels (
  id        BIGINT AUTO_INCREMENT PRIMARY KEY,
  name      VARCHAR(255) NOT NULL,
  price     DECIMAL(12,2) NOT NULL,
  doingtime TIMESTAMP NULL DEFAULT CURRENT_TIMESTAMP
)`

// No RETURNING in MySQL; the row is re-read by LastInsertId.
const insertMySQL = `INSERT INTO hotels (name, price, doingtime) VALUES (?, ?, ?)`

const selectByIDMySQL = "SELECT " + hotelColumns + " FROM hotels WHERE id = ?"

// DATE() of a malformed literal is NULL in MySQL, so bad input matches nothing.
const searchByDateMySQL = "SELECT " + hotelColumns + " FROM hotels WHERE DATE(doingtime) = DATE(?)"

// TRUNCATE resets AUTO_INCREMENT on InnoDB.
const truncateMySQL = `TRUNCATE TABLE hotels`

// -----------------------------------------------------------------------------
// POSTGRES
// -----------------------------------------------------------------------------

const createTablePostgres = `
CREATE TABLE IF NOT EXISTS hotels (
  id        SERIAL PRIMARY KEY,
  name      VARCHAR(255) NOT NULL,
  price     DECIMAL NOT NULL,
  doingtime TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

const insertPostgres = `INSERT INTO hotels (name, price, doingtime) VALUES ($1, $2, $3) RETURNING ` + hotelColumns

const selectByIDPostgres = "SELECT " + hotelColumns + " FROM hotels WHERE id = $1"

// A malformed literal fails the ::date cast and surfaces as an error.
const searchByDatePostgres = "SELECT " + hotelColumns + " FROM hotels WHERE doingtime::date = $1::date"

const truncatePostgres = `TRUNCATE TABLE hotels RESTART IDENTITY`

const databaseExistsPostgres = `SELECT 1 FROM pg_database WHERE datname = $1`

// -----------------------------------------------------------------------------
// SHARED
// -----------------------------------------------------------------------------

// No ORDER BY: rows come back in storage's natural order.
const selectAllSQL = "SELECT " + hotelColumns + " FROM hotels"
