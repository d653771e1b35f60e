package infra_neo4j_graph

const (
	upsertMovieCypher = `
MERGE (m:Movie {id: $id})
SET m.title = $title,
    m.year = $year,
    m.avg_rating = $avg_rating,
    m.num_reviews = $num_reviews`

	upsertGenresCypher = `
MERGE (m:Movie {id: $id})
WITH m
UNWIND $genres AS name
MERGE (g:Genre {name: name})
MERGE (m)-[:BELONGS_TO]->(g)`

	upsertUserCypher = `
MERGE (u:User {id: $id})
SET u.username = $username`

	upsertRatingCypher = `
MERGE (u:User {id: $user_id})
MERGE (m:Movie {id: $movie_id})
MERGE (u)-[r:RATED]->(m)
SET r.rating = $rating`

	similarMoviesCypher = `
MATCH (m:Movie {id: $id})-[:BELONGS_TO]->(g:Genre)<-[:BELONGS_TO]-(other:Movie)
WHERE other <> m
WITH other, count(DISTINCT g) AS shared_genres
ORDER BY shared_genres DESC, coalesce(toFloat(other.avg_rating), 0.0) DESC, other.id ASC
LIMIT $limit
OPTIONAL MATCH (other)-[:BELONGS_TO]->(og:Genre)
RETURN other.id AS id,
       other.title AS title,
       coalesce(toInteger(other.year), 0) AS year,
       coalesce(toFloat(other.avg_rating), 0.0) AS avg_rating,
       coalesce(toInteger(other.num_reviews), 0) AS num_reviews,
       collect(og.name) AS genres,
       shared_genres
ORDER BY shared_genres DESC, avg_rating DESC, id ASC`

	userRecommendationsCypher = `
MATCH (u:User {id: $id})-[r:RATED]->(:Movie)-[:BELONGS_TO]->(g:Genre)<-[:BELONGS_TO]-(cand:Movie)
WHERE r.rating >= $min_rating AND NOT (u)-[:RATED]->(cand)
WITH cand, count(g) AS genre_matches, avg(r.rating) AS avg_user_rating
ORDER BY genre_matches DESC, avg_user_rating DESC, coalesce(toFloat(cand.avg_rating), 0.0) DESC, cand.id ASC
LIMIT $limit
OPTIONAL MATCH (cand)-[:BELONGS_TO]->(cg:Genre)
RETURN cand.id AS id,
       cand.title AS title,
       coalesce(toInteger(cand.year), 0) AS year,
       coalesce(toFloat(cand.avg_rating), 0.0) AS avg_rating,
       coalesce(toInteger(cand.num_reviews), 0) AS num_reviews,
       collect(cg.name) AS genres,
       genre_matches,
       avg_user_rating
ORDER BY genre_matches DESC, avg_user_rating DESC, avg_rating DESC, id ASC`

	popularGenresCypher = `
MATCH (g:Genre)<-[:BELONGS_TO]-(m:Movie)
RETURN g.name AS genre,
       count(m) AS movie_count,
       coalesce(avg(toFloat(m.avg_rating)), 0.0) AS avg_rating
ORDER BY movie_count DESC, avg_rating DESC, genre ASC
LIMIT $limit`

	shortestPathCypher = `
MATCH (a:Movie {id: $from}), (b:Movie {id: $to})
MATCH p = shortestPath((a)-[:BELONGS_TO*]-(b))
RETURN p`
)
