package store

// AUTOINCREMENT keeps ids from being reused: a link left pointing at a
// deleted ingredient must never resolve to a newer ingredient.
//
// recipe_ingredients.ingredient_id is a logical reference with no FOREIGN KEY
// so ingredients can be deleted while links still point at them.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS ingredients (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    name        TEXT NOT NULL,
    unit_price  REAL NOT NULL,
    unit        TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS recipes (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    name        TEXT NOT NULL,
    description TEXT,
    margin      REAL NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS recipe_ingredients (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    recipe_id     INTEGER NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
    ingredient_id INTEGER NOT NULL,
    quantity      REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_ingredients_name ON ingredients(name);
CREATE INDEX IF NOT EXISTS idx_recipes_name ON recipes(name);
CREATE INDEX IF NOT EXISTS idx_recipe_ingredients_recipe ON recipe_ingredients(recipe_id);
`

const dropSQL = `
DROP TABLE IF EXISTS recipe_ingredients;
DROP TABLE IF EXISTS recipes;
DROP TABLE IF EXISTS ingredients;
`

// addMarginColumnSQL upgrades databases created before recipes had a margin.
const addMarginColumnSQL = `ALTER TABLE recipes ADD COLUMN margin REAL NOT NULL DEFAULT 0`
